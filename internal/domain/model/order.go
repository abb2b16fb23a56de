package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the booking/purchase lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusOffering  OrderStatus = "Offering"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusCompleted OrderStatus = "Completed"
)

// PropertyStatusFor returns the property status an order status forces on its
// target unit. The second value is false for statuses that leave the property
// untouched (Pending).
func (s OrderStatus) PropertyStatusFor() (PropertyStatus, bool) {
	switch s {
	case OrderStatusOffering:
		return PropertyStatusBooked, true
	case OrderStatusCompleted:
		return PropertyStatusSold, true
	case OrderStatusCancelled:
		return PropertyStatusFree, true
	default:
		return "", false
	}
}

// OrderKind separates short-term bookings from outright purchases.
type OrderKind string

const (
	OrderKindBooking  OrderKind = "Booking"
	OrderKindPurchase OrderKind = "Purchase"
)

type PaymentKind string

const (
	PaymentCash         PaymentKind = "Cash"
	PaymentCard         PaymentKind = "Card"
	PaymentMortgage     PaymentKind = "Mortgage"
	PaymentInstallment  PaymentKind = "Installment"
	PaymentBankTransfer PaymentKind = "Bank Transfer"
)

// Order is a booking or purchase intent against exactly one property.
type Order struct {
	ID                    int64
	UserID                int64
	ObjectID              int64
	ObjectKind            ObjectKind
	OrderKind             OrderKind
	TotalPrice            decimal.Decimal
	OrderDate             time.Time
	PaymentKind           PaymentKind
	BookingDeposit        decimal.Decimal
	BookingExpirationDate time.Time
	Status                OrderStatus
}

// OrderUpdate carries a partial order mutation; nil fields are left unchanged.
type OrderUpdate struct {
	ObjectID              *int64
	ObjectKind            *ObjectKind
	OrderKind             *OrderKind
	TotalPrice            *decimal.Decimal
	PaymentKind           *PaymentKind
	BookingDeposit        *decimal.Decimal
	BookingExpirationDate *time.Time
	Status                *OrderStatus
}

// Retargets reports whether the update explicitly moves the order to another
// property. Both fields must be present; a partial pair is ignored so a status
// update can never be redirected at an unrelated unit.
func (u OrderUpdate) Retargets() bool {
	return u.ObjectID != nil && u.ObjectKind != nil
}
