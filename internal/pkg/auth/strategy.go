package auth

import "time"

// Claims is the identity a verified token resolves to.
type Claims struct {
	UserID int64
	Role   string
}

type Strategy interface {
	IssueToken(userID int64, role string) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
