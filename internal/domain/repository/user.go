package repository

import (
	"context"

	"github.com/baspana/backend/internal/domain/model"
)

// NewUser carries the fields persisted when registering a user.
type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  string
	City         model.City
	Role         model.Role
}

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user NewUser) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
