package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
)

// CreateOrderRequest describes a new booking or purchase payload.
type CreateOrderRequest struct {
	ObjectID              int64           `json:"object_id"`
	ObjectKind            string          `json:"object_kind"`
	OrderKind             string          `json:"order_kind"`
	TotalPrice            decimal.Decimal `json:"total_price"`
	PaymentKind           string          `json:"payment_kind"`
	BookingDeposit        decimal.Decimal `json:"booking_deposit"`
	BookingExpirationDate time.Time       `json:"booking_expiration_date"`
	Status                string          `json:"status"`
}

// UpdateOrderRequest describes a partial order mutation. Absent fields stay
// unchanged.
type UpdateOrderRequest struct {
	ObjectID              *int64           `json:"object_id"`
	ObjectKind            *string          `json:"object_kind"`
	OrderKind             *string          `json:"order_kind"`
	TotalPrice            *decimal.Decimal `json:"total_price"`
	PaymentKind           *string          `json:"payment_kind"`
	BookingDeposit        *decimal.Decimal `json:"booking_deposit"`
	BookingExpirationDate *time.Time       `json:"booking_expiration_date"`
	Status                *string          `json:"status"`
}

// OrderResponse describes one order.
type OrderResponse struct {
	ID                    int64           `json:"id"`
	UserID                int64           `json:"user_id"`
	ObjectID              int64           `json:"object_id"`
	ObjectKind            string          `json:"object_kind"`
	OrderKind             string          `json:"order_kind"`
	TotalPrice            decimal.Decimal `json:"total_price"`
	OrderDate             time.Time       `json:"order_date"`
	PaymentKind           string          `json:"payment_kind"`
	BookingDeposit        decimal.Decimal `json:"booking_deposit"`
	BookingExpirationDate time.Time       `json:"booking_expiration_date"`
	Status                string          `json:"status"`
}

// OrderListResponse carries one page of orders with the total match count.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// NewOrderResponse maps a domain order to its wire form.
func NewOrderResponse(order *model.Order) OrderResponse {
	return OrderResponse{
		ID:                    order.ID,
		UserID:                order.UserID,
		ObjectID:              order.ObjectID,
		ObjectKind:            string(order.ObjectKind),
		OrderKind:             string(order.OrderKind),
		TotalPrice:            order.TotalPrice,
		OrderDate:             order.OrderDate,
		PaymentKind:           string(order.PaymentKind),
		BookingDeposit:        order.BookingDeposit,
		BookingExpirationDate: order.BookingExpirationDate,
		Status:                string(order.Status),
	}
}
