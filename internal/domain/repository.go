package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks
type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	AdminRepoName        RepositoryName = "admin"
	CashierOrderRepoName RepositoryName = "cashier_order"
	CartOrderRepoName    RepositoryName = "cart_order"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user User) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id int64) (*User, error)
}

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin Admin) (*Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (*Admin, error)
}

type CashierOrderRepository interface {
	CreateCashierOrder(ctx context.Context, order CashierOrder) (*CashierOrder, error)
	GetAll(ctx context.Context) ([]CashierOrder, error)
	GetByCustomerPhone(ctx context.Context, phone string) ([]CashierOrder, error)
}

type CartOrderRepository interface {
	CreateCartOrder(ctx context.Context, order CartOrder) (*CartOrder, error)
}
