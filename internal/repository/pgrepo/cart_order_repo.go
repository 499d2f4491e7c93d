package pgrepo

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/pkg/uow"
)

type CartOrderRepository struct {
	db uow.DBTX
}

func NewCartOrderRepository(db uow.DBTX) *CartOrderRepository {
	return &CartOrderRepository{db: db}
}

// CreateCartOrder сохраняет корзинный заказ. Позиции корзины хранятся jsonb-документом,
// created_at выставляется базой.
func (c *CartOrderRepository) CreateCartOrder(ctx context.Context, order domain.CartOrder) (*domain.CartOrder, error) {
	itemsJSON, marshalErr := json.Marshal(order.Items)
	if marshalErr != nil {
		return nil, convertErr(marshalErr, "marshaling cart order items")
	}

	row := c.db.QueryRow(ctx, `
		INSERT INTO cart_orders (items, total)
		VALUES ($1, $2)
		RETURNING id, created_at, items, total::text`,
		itemsJSON, order.Total.String(),
	)

	var created domain.CartOrder
	var itemsRaw []byte
	var total string

	if err := row.Scan(&created.ID, &created.CreatedAt, &itemsRaw, &total); err != nil {
		return nil, convertErr(err, "creating cart order")
	}
	if err := json.Unmarshal(itemsRaw, &created.Items); err != nil {
		return nil, convertErr(err, "unmarshaling cart order items")
	}

	var err error
	created.Total, err = decimal.NewFromString(total)
	if err != nil {
		return nil, convertErr(err, "parsing cart order total")
	}
	return &created, nil
}
