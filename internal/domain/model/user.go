package model

import "time"

// Role controls access to catalog mutation endpoints.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleConsumer Role = "Consumer"
)

// User represents a registered customer or staff member.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  string
	City         City
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}
