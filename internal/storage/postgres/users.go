package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, email, password_hash, first_name, last_name, phone_number, city, role, is_active, created_at`

func (r *userRepository) Create(ctx context.Context, user repository.NewUser) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, first_name, last_name, phone_number, city, role)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, is_active, created_at`
	role := user.Role
	if role == "" {
		role = model.RoleConsumer
	}

	u := model.User{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PhoneNumber:  user.PhoneNumber,
		City:         user.City,
		Role:         role,
	}
	err := r.storage.pool.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.PhoneNumber, user.City, role,
	).Scan(&u.ID, &u.IsActive, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.PhoneNumber, &u.City, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
