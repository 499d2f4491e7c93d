package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/pkg/uow"
)

// amount отдается текстом, чтобы не зависеть от бинарного кодека numeric.
const cashierOrderColumns = `id, created_at, order_no, customer_phone, product_id, product_name,
product_category, amount::text, date, payment_by, payment_for`

type CashierOrderRepository struct {
	db uow.DBTX
}

func NewCashierOrderRepository(db uow.DBTX) *CashierOrderRepository {
	return &CashierOrderRepository{db: db}
}

// CreateCashierOrder сохраняет кассовый заказ как есть, без производных полей.
func (c *CashierOrderRepository) CreateCashierOrder(
	ctx context.Context,
	order domain.CashierOrder,
) (*domain.CashierOrder, error) {
	row := c.db.QueryRow(ctx, `
		INSERT INTO cashier_orders
			(order_no, customer_phone, product_id, product_name, product_category, amount, date, payment_by, payment_for)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+cashierOrderColumns,
		order.OrderNo,
		order.CustomerPhone,
		order.ProductID,
		order.ProductName,
		order.ProductCategory,
		order.Amount.String(),
		order.Date,
		order.PaymentBy,
		order.PaymentFor,
	)
	created, err := scanCashierOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating cashier order")
	}
	return created, nil
}

// GetAll возвращает все кассовые заказы в порядке создания.
func (c *CashierOrderRepository) GetAll(ctx context.Context) ([]domain.CashierOrder, error) {
	rows, err := c.db.Query(ctx, `SELECT `+cashierOrderColumns+` FROM cashier_orders ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "getting all cashier orders")
	}
	return collectCashierOrders(rows)
}

// GetByCustomerPhone возвращает кассовые заказы с указанным телефоном покупателя.
func (c *CashierOrderRepository) GetByCustomerPhone(ctx context.Context, phone string) ([]domain.CashierOrder, error) {
	rows, err := c.db.Query(ctx, `
		SELECT `+cashierOrderColumns+`
		FROM cashier_orders WHERE customer_phone = $1 ORDER BY id`, phone)
	if err != nil {
		return nil, convertErr(err, "getting cashier orders by phone %s", phone)
	}
	return collectCashierOrders(rows)
}

func collectCashierOrders(rows pgx.Rows) ([]domain.CashierOrder, error) {
	defer rows.Close()

	var orders []domain.CashierOrder
	for rows.Next() {
		order, scanErr := scanCashierOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning cashier order")
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "iterating cashier orders")
	}
	return orders, nil
}

func scanCashierOrder(row rowScanner) (*domain.CashierOrder, error) {
	var order domain.CashierOrder
	var amount string

	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.OrderNo,
		&order.CustomerPhone,
		&order.ProductID,
		&order.ProductName,
		&order.ProductCategory,
		&amount,
		&order.Date,
		&order.PaymentBy,
		&order.PaymentFor,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	order.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}
