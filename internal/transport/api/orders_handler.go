package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mkravtsov/canteen-api/internal/domain"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type CashierOrderParams struct {
	OrderNo         int64           `json:"orderNo"`
	CustomerPhNo    string          `json:"customerPhNo"`
	ProductID       int64           `json:"productId"`
	ProductName     string          `json:"productName"`
	Foodamount      decimal.Decimal `json:"foodamount"`
	ProductCategory string          `json:"productCategory"`
	Date            time.Time       `json:"date"`
	Paymentby       int             `json:"paymentby"`
	Paymentfor      int             `json:"paymentfor"`
}

type CashierOrderResponse struct {
	ID              int64     `json:"id"`
	OrderNo         int64     `json:"orderNo"`
	CustomerPhNo    string    `json:"customerPhNo"`
	ProductID       int64     `json:"productId"`
	ProductName     string    `json:"productName"`
	Foodamount      float64   `json:"foodamount"`
	ProductCategory string    `json:"productCategory"`
	Date            time.Time `json:"date"`
	Paymentby       int       `json:"paymentby"`
	Paymentfor      int       `json:"paymentfor"`
}

func newCashierOrderResponses(orders []domain.CashierOrder) []CashierOrderResponse {
	response := make([]CashierOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = CashierOrderResponse{
			ID:              order.ID,
			OrderNo:         order.OrderNo,
			CustomerPhNo:    order.CustomerPhone,
			ProductID:       order.ProductID,
			ProductName:     order.ProductName,
			Foodamount:      order.Amount.InexactFloat64(),
			ProductCategory: order.ProductCategory,
			Date:            order.Date,
			Paymentby:       order.PaymentBy,
			Paymentfor:      order.PaymentFor,
		}
	}
	return response
}

// AddPayment POST AddPaymentRoute. Запись сохраняется как есть; контракт ручки текстовый,
// любой сбой (включая некорректные типы в теле) отдается как 500.
func (o *OrdersHandler) AddPayment(c *gin.Context) {
	var params CashierOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypePrivate)
		c.String(http.StatusInternalServerError, "Failed to add order")
		c.Abort()
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, createErr := o.orderSvs.CreatePayment(ctx, domain.CashierOrder{
		OrderNo:         params.OrderNo,
		CustomerPhone:   params.CustomerPhNo,
		ProductID:       params.ProductID,
		ProductName:     params.ProductName,
		ProductCategory: params.ProductCategory,
		Amount:          params.Foodamount,
		Date:            params.Date,
		PaymentBy:       params.Paymentby,
		PaymentFor:      params.Paymentfor,
	})
	if createErr != nil {
		_ = c.Error(createErr).SetType(gin.ErrorTypePrivate)
		c.String(http.StatusInternalServerError, "Failed to add order")
		c.Abort()
		return
	}

	c.String(http.StatusCreated, "Order added successfully")
}

// Index GET OrdersRoute. Пустой результат по контракту - 404, а не пустой массив.
func (o *OrdersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.AllPayments(ctx)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.String(http.StatusInternalServerError, "Failed to retrieve orders")
		c.Abort()
		return
	}

	if len(orders) == 0 {
		c.String(http.StatusNotFound, "No orders found")
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, newCashierOrderResponses(orders))
}

type ParticularDataParams struct {
	PhoneNumber string `binding:"required" json:"phoneNumber"`
}

// ByPhone POST ParticularDataRoute. Выборка кассовых заказов по телефону покупателя.
func (o *OrdersHandler) ByPhone(c *gin.Context) {
	var params ParticularDataParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.PaymentsByPhone(ctx, params.PhoneNumber)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.String(http.StatusInternalServerError, "Failed to retrieve orders")
		c.Abort()
		return
	}

	if len(orders) == 0 {
		c.String(http.StatusNotFound, "No orders found for this phone number")
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, newCashierOrderResponses(orders))
}

type CartItemParams struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CartOrderParams struct {
	Items []CartItemParams `binding:"required" json:"items"`
	Total decimal.Decimal  `json:"total"`
}

type CartItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartOrderResponse struct {
	ID        int64              `json:"id"`
	Items     []CartItemResponse `json:"items"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
}

func newCartOrderResponse(order *domain.CartOrder) CartOrderResponse {
	items := make([]CartItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = CartItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price.InexactFloat64(),
			Quantity: item.Quantity,
		}
	}
	return CartOrderResponse{
		ID:        order.ID,
		Items:     items,
		Total:     order.Total.InexactFloat64(),
		CreatedAt: order.CreatedAt,
	}
}

// CreateCartOrder POST CartOrdersRoute. Отметка времени создания выставляется на сервере.
func (o *OrdersHandler) CreateCartOrder(c *gin.Context) {
	var params CartOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Error placing order"})
		return
	}

	items := make([]domain.CartItem, len(params.Items))
	for i, item := range params.Items {
		items[i] = domain.CartItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, createErr := o.orderSvs.CreateCartOrder(ctx, items, params.Total)
	if createErr != nil {
		_ = c.Error(createErr).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Error placing order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"order":   newCartOrderResponse(order),
	})
}
