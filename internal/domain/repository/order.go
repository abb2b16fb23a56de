package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
)

// NewOrder carries the fields persisted when creating an order.
type NewOrder struct {
	UserID                int64
	ObjectID              int64
	ObjectKind            model.ObjectKind
	OrderKind             model.OrderKind
	TotalPrice            decimal.Decimal
	PaymentKind           model.PaymentKind
	BookingDeposit        decimal.Decimal
	BookingExpirationDate time.Time
	Status                model.OrderStatus
}

// OrderFilter narrows and orders the order listing. Nil fields are skipped.
type OrderFilter struct {
	UserID         *int64
	ObjectID       *int64
	ObjectKind     *model.ObjectKind
	OrderKind      *model.OrderKind
	Status         *model.OrderStatus
	PaymentKind    *model.PaymentKind
	MinTotalPrice  *decimal.Decimal
	MaxTotalPrice  *decimal.Decimal
	FromExpiration *time.Time
	ToExpiration   *time.Time
	SortBy         string
	SortDesc       bool
	Limit          int
	Offset         int
}

// OrderRepository keeps orders and their target properties consistent. Create
// and Update run inside one database transaction with the property row locked,
// so a concurrent reader never sees an order in a new status with the property
// still in its old one.
type OrderRepository interface {
	Create(ctx context.Context, order NewOrder) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	Update(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, int, error)
	ExpireBookings(ctx context.Context, asOf time.Time) (int, error)
	Delete(ctx context.Context, id int64) error
}
