package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/internal/service"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type AdminServicer interface {
	Register(ctx context.Context, args service.RegisterAdminArgs) (*domain.Admin, error)
	Login(ctx context.Context, args service.LoginAdminArgs) (*domain.Admin, string, error)
}

type OrderServicer interface {
	CreatePayment(ctx context.Context, order domain.CashierOrder) (*domain.CashierOrder, error)
	AllPayments(ctx context.Context) ([]domain.CashierOrder, error)
	PaymentsByPhone(ctx context.Context, phone string) ([]domain.CashierOrder, error)
	CreateCartOrder(
		ctx context.Context,
		items []domain.CartItem,
		total decimal.Decimal,
	) (*domain.CartOrder, error)
}
