package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/pkg/uow"
)

type OrderService struct {
	cashierRepo domain.CashierOrderRepository
	cartRepo    domain.CartOrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	cashierRepo, cashierErr := uow.GetRepositoryAs[domain.CashierOrderRepository](
		u, uow.RepositoryName(domain.CashierOrderRepoName))
	if cashierErr != nil {
		return nil, cashierErr
	}
	cartRepo, cartErr := uow.GetRepositoryAs[domain.CartOrderRepository](
		u, uow.RepositoryName(domain.CartOrderRepoName))
	if cartErr != nil {
		return nil, cartErr
	}
	return &OrderService{
		cashierRepo: cashierRepo,
		cartRepo:    cartRepo,
	}, nil
}

// CreatePayment сохраняет кассовый заказ как есть, без валидации и производных полей.
func (o *OrderService) CreatePayment(ctx context.Context, order domain.CashierOrder) (*domain.CashierOrder, error) {
	created, err := o.cashierRepo.CreateCashierOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}
	return created, nil
}

// AllPayments возвращает все кассовые заказы. Пустой срез ошибкой не считается,
// решение про 404 принимает транспортный слой.
func (o *OrderService) AllPayments(ctx context.Context) ([]domain.CashierOrder, error) {
	orders, err := o.cashierRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting payments: %w", err)
	}
	return orders, nil
}

// PaymentsByPhone возвращает кассовые заказы по телефону покупателя.
func (o *OrderService) PaymentsByPhone(ctx context.Context, phone string) ([]domain.CashierOrder, error) {
	orders, err := o.cashierRepo.GetByCustomerPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("getting payments by phone: %w", err)
	}
	return orders, nil
}

// CreateCartOrder сохраняет корзинный заказ, отметка времени создания выставляется на сервере.
func (o *OrderService) CreateCartOrder(
	ctx context.Context,
	items []domain.CartItem,
	total decimal.Decimal,
) (*domain.CartOrder, error) {
	created, err := o.cartRepo.CreateCartOrder(ctx, domain.CartOrder{
		Items: items,
		Total: total,
	})
	if err != nil {
		return nil, fmt.Errorf("creating cart order: %w", err)
	}
	return created, nil
}
