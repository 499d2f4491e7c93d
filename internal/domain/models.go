package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Email        string
	Password     string
	DateOfBirth  time.Time
	PhoneNumber  string
	ProfileImage string
}

type Admin struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
}

type CashierOrder struct {
	ID              int64
	CreatedAt       time.Time
	OrderNo         int64
	CustomerPhone   string
	ProductID       int64
	ProductName     string
	ProductCategory string
	Amount          decimal.Decimal
	Date            time.Time
	PaymentBy       int
	PaymentFor      int
}

type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CartOrder struct {
	ID        int64
	CreatedAt time.Time
	Items     []CartItem
	Total     decimal.Decimal
}
