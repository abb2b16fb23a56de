package usecase

import (
	"context"
	"time"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

// BookingUseCase encapsulates the order lifecycle: creating booking or
// purchase orders, moving them through their statuses and expiring stale
// bookings. Property status transitions ride on the repository transaction.
type BookingUseCase struct {
	orders repository.OrderRepository
}

// NewBookingUseCase constructs BookingUseCase.
func NewBookingUseCase(orders repository.OrderRepository) *BookingUseCase {
	return &BookingUseCase{orders: orders}
}

// CreateOrder places a new order against a free property.
func (u *BookingUseCase) CreateOrder(ctx context.Context, in repository.NewOrder) (*model.Order, error) {
	if !in.ObjectKind.Bookable() {
		return nil, domainErrors.ErrPropertyUnavailable
	}
	if !in.TotalPrice.IsPositive() {
		return nil, domainErrors.ErrInvalidAmount
	}
	if in.BookingDeposit.IsNegative() {
		return nil, domainErrors.ErrInvalidAmount
	}
	if in.Status == "" {
		in.Status = model.OrderStatusPending
	}
	if _, known := in.Status.PropertyStatusFor(); !known && in.Status != model.OrderStatusPending {
		return nil, domainErrors.ErrInvalidOrderStatus
	}
	return u.orders.Create(ctx, in)
}

// GetOrder fetches one order by identifier.
func (u *BookingUseCase) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// UpdateOrder applies a partial mutation to an order. A status change also
// moves the target property; the target is the order's stored one unless the
// update explicitly retargets.
func (u *BookingUseCase) UpdateOrder(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	if update.ObjectKind != nil && !update.ObjectKind.Bookable() {
		return nil, domainErrors.ErrPropertyUnavailable
	}
	if update.TotalPrice != nil && !update.TotalPrice.IsPositive() {
		return nil, domainErrors.ErrInvalidAmount
	}
	if update.BookingDeposit != nil && update.BookingDeposit.IsNegative() {
		return nil, domainErrors.ErrInvalidAmount
	}
	if update.Status != nil && !validOrderStatus(*update.Status) {
		return nil, domainErrors.ErrInvalidOrderStatus
	}
	return u.orders.Update(ctx, id, update)
}

// ListOrders returns orders matching the filter together with the total count.
func (u *BookingUseCase) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	return u.orders.List(ctx, filter)
}

// ExpireBookings cancels every unfinished order whose booking expiration date
// has passed and frees the properties. Returns the number of cancelled orders.
func (u *BookingUseCase) ExpireBookings(ctx context.Context, asOf time.Time) (int, error) {
	return u.orders.ExpireBookings(ctx, asOf)
}

// DeleteOrder removes an order row.
func (u *BookingUseCase) DeleteOrder(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

func validOrderStatus(s model.OrderStatus) bool {
	switch s {
	case model.OrderStatusPending, model.OrderStatusOffering, model.OrderStatusCancelled, model.OrderStatusCompleted:
		return true
	}
	return false
}
