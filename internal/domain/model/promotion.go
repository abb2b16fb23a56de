package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion is a discount campaign optionally bound to one complex.
type Promotion struct {
	ID                 int64
	Title              string
	Description        string
	DiscountPercentage decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
	ImageURL           string
	ComplexID          *int64
	IsActive           bool
	CreatedAt          time.Time
}
