package model

import "time"

// Review is a rating left against a residential complex. UserID is nil for
// reviews submitted under a free-form author name.
type Review struct {
	ID         int64
	ComplexID  int64
	UserID     *int64
	AuthorName string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
