package model

import "time"

// Favorite marks one catalog object as saved by a user.
type Favorite struct {
	ID         int64
	UserID     int64
	ObjectID   int64
	ObjectKind ObjectKind
	CreatedAt  time.Time
}
