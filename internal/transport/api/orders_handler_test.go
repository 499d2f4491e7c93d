package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/internal/transport/api/mocks"
	"github.com/mkravtsov/canteen-api/internal/transport/api/testutils"
)

type OrdersHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)

	router, routerErr := New(RouterArgs{
		OrderService: s.mockOrderService,
		JWTSecretKey: []byte("super secret key"),
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *OrdersHandlerTestSuite) readBody(resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(body)
}

func sampleCashierOrder() domain.CashierOrder {
	return domain.CashierOrder{
		ID:              1,
		CreatedAt:       time.Now(),
		OrderNo:         101,
		CustomerPhone:   "+79990001122",
		ProductID:       7,
		ProductName:     "Paneer Roll",
		ProductCategory: "snacks",
		Amount:          decimal.NewFromInt(120),
		Date:            time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
		PaymentBy:       1,
		PaymentFor:      2,
	}
}

func (s *OrdersHandlerTestSuite) TestAddPayment() {
	validPayload := `{
		"orderNo": 101,
		"customerPhNo": "+79990001122",
		"productId": 7,
		"productName": "Paneer Roll",
		"foodamount": 120,
		"productCategory": "snacks",
		"date": "2026-08-29T00:00:00Z",
		"paymentby": 1,
		"paymentfor": 2
	}`

	created := sampleCashierOrder()

	gomock.InOrder(
		s.mockOrderService.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return(&created, nil),
		s.mockOrderService.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom")),
	)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok",
			payload:    validPayload,
			wantStatus: http.StatusCreated,
			wantBody:   "Order added successfully",
		},
		{
			name:       "persist failure",
			payload:    validPayload,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to add order",
		},
		{
			// Контракт ручки текстовый, кривое тело тоже отдается как 500.
			name:       "malformed body",
			payload:    `{"orderNo": "not a number"}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to add order",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    AddPaymentRoute,
				Body:   strings.NewReader(t.payload),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(t.wantStatus, resp.StatusCode)
			s.Equal(t.wantBody, s.readBody(resp))
		})
	}
}

func (s *OrdersHandlerTestSuite) TestIndex() {
	orders := []domain.CashierOrder{sampleCashierOrder()}

	gomock.InOrder(
		s.mockOrderService.EXPECT().AllPayments(gomock.Any()).Return(orders, nil),
		s.mockOrderService.EXPECT().AllPayments(gomock.Any()).Return([]domain.CashierOrder{}, nil),
		s.mockOrderService.EXPECT().AllPayments(gomock.Any()).Return(nil, errors.New("boom")),
	)

	doIndex := func() *http.Response {
		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    OrdersRoute,
		})
		s.Require().NoError(err)
		return resp
	}

	s.Run("ok", func() {
		resp := doIndex()
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusOK, resp.StatusCode)

		var payload []CashierOrderResponse
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
		s.Require().Len(payload, 1)
		s.Equal(orders[0].OrderNo, payload[0].OrderNo)
		s.Equal(orders[0].CustomerPhone, payload[0].CustomerPhNo)
		s.InDelta(120, payload[0].Foodamount, 0.0001)
	})

	s.Run("empty is 404", func() {
		resp := doIndex()
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusNotFound, resp.StatusCode)
		s.Equal("No orders found", s.readBody(resp))
	})

	s.Run("storage failure", func() {
		resp := doIndex()
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusInternalServerError, resp.StatusCode)
		s.Equal("Failed to retrieve orders", s.readBody(resp))
	})
}

func (s *OrdersHandlerTestSuite) TestByPhone() {
	phone := "+79990001122"
	orders := []domain.CashierOrder{sampleCashierOrder()}

	s.mockOrderService.EXPECT().
		PaymentsByPhone(gomock.Any(), phone).
		Return(orders, nil)
	s.mockOrderService.EXPECT().
		PaymentsByPhone(gomock.Any(), "+70000000000").
		Return([]domain.CashierOrder{}, nil)

	doRequest := func(payload string) *http.Response {
		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodPost,
			URL:    ParticularDataRoute,
			Body:   strings.NewReader(payload),
		}, testutils.WithHeader("Content-Type", "application/json"))
		s.Require().NoError(err)
		return resp
	}

	s.Run("ok", func() {
		resp := doRequest(`{"phoneNumber":"+79990001122"}`)
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusOK, resp.StatusCode)

		var payload []CashierOrderResponse
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
		s.Require().Len(payload, 1)
		s.Equal(phone, payload[0].CustomerPhNo)
	})

	s.Run("no orders is 404", func() {
		resp := doRequest(`{"phoneNumber":"+70000000000"}`)
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusNotFound, resp.StatusCode)
		s.Equal("No orders found for this phone number", s.readBody(resp))
	})

	s.Run("missing phone", func() {
		resp := doRequest(`{}`)
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func (s *OrdersHandlerTestSuite) TestCreateCartOrder() {
	items := []domain.CartItem{
		{ID: "dosa-1", Name: "Masala Dosa", Price: decimal.NewFromInt(90), Quantity: 2},
		{ID: "tea-4", Name: "Tea", Price: decimal.NewFromInt(15), Quantity: 1},
	}
	total := decimal.NewFromInt(195)

	created := domain.CartOrder{
		ID:        1,
		CreatedAt: time.Now(),
		Items:     items,
		Total:     total,
	}

	validPayload := `{
		"items": [
			{"id": "dosa-1", "name": "Masala Dosa", "price": 90, "quantity": 2},
			{"id": "tea-4", "name": "Tea", "price": 15, "quantity": 1}
		],
		"total": 195
	}`

	gomock.InOrder(
		s.mockOrderService.EXPECT().
			CreateCartOrder(gomock.Any(), items, decimalEq(total)).
			Return(&created, nil),
		s.mockOrderService.EXPECT().
			CreateCartOrder(gomock.Any(), items, decimalEq(total)).
			Return(nil, errors.New("boom")),
	)

	doRequest := func(payload string) *http.Response {
		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodPost,
			URL:    CartOrdersRoute,
			Body:   strings.NewReader(payload),
		}, testutils.WithHeader("Content-Type", "application/json"))
		s.Require().NoError(err)
		return resp
	}

	s.Run("ok", func() {
		resp := doRequest(validPayload)
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusCreated, resp.StatusCode)

		var payload struct {
			Message string            `json:"message"`
			Order   CartOrderResponse `json:"order"`
		}
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
		s.Equal("Order placed successfully!", payload.Message)
		s.Equal(created.ID, payload.Order.ID)
		s.Len(payload.Order.Items, 2)
		s.InDelta(195, payload.Order.Total, 0.0001)
		s.False(payload.Order.CreatedAt.IsZero())
	})

	s.Run("persist failure", func() {
		resp := doRequest(validPayload)
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusInternalServerError, resp.StatusCode)

		var payload map[string]any
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
		s.Equal("Error placing order", payload["message"])
	})

	s.Run("missing items", func() {
		resp := doRequest(`{"total": 195}`)
		defer resp.Body.Close() //nolint:errcheck

		s.Equal(http.StatusBadRequest, resp.StatusCode)

		var payload map[string]any
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
		s.Equal("Error placing order", payload["message"])
	})
}

// decimalEq сравнивает decimal по значению, а не по внутреннему представлению.
func decimalEq(want decimal.Decimal) gomock.Matcher {
	return decimalMatcher{want: want}
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal equal to " + m.want.String()
}
