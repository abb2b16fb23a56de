package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baspana/backend/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on, extracted so
// tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository { return &userRepository{storage: s} }

func (s *Storage) Orders() repository.OrderRepository { return &orderRepository{storage: s} }

func (s *Storage) Wallets() repository.WalletRepository { return &walletRepository{storage: s} }

func (s *Storage) Transactions() repository.TransactionRepository {
	return &transactionRepository{storage: s}
}

func (s *Storage) Complexes() repository.ComplexRepository { return &complexRepository{storage: s} }

func (s *Storage) Buildings() repository.BuildingRepository { return &buildingRepository{storage: s} }

func (s *Storage) Apartments() repository.ApartmentRepository {
	return &apartmentRepository{storage: s}
}

func (s *Storage) CommercialUnits() repository.CommercialUnitRepository {
	return &commercialRepository{storage: s}
}

func (s *Storage) Reviews() repository.ReviewRepository { return &reviewRepository{storage: s} }

func (s *Storage) Favorites() repository.FavoriteRepository {
	return &favoriteRepository{storage: s}
}

func (s *Storage) Promotions() repository.PromotionRepository {
	return &promotionRepository{storage: s}
}

func (s *Storage) Images() repository.ImageRepository { return &imageRepository{storage: s} }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            phone_number TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL DEFAULT 'Consumer',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS residential_complex (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            block_count INT NOT NULL DEFAULT 0,
            material TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            has_security BOOLEAN NOT NULL DEFAULT FALSE,
            building_class TEXT NOT NULL DEFAULT '',
            building_status TEXT NOT NULL DEFAULT '',
            min_area DOUBLE PRECISION NOT NULL DEFAULT 0,
            min_price NUMERIC NOT NULL DEFAULT 0,
            construction_end DATE,
            main_image TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS building (
            id BIGSERIAL PRIMARY KEY,
            complex_id BIGINT NOT NULL REFERENCES residential_complex(id),
            block INT NOT NULL DEFAULT 0,
            description TEXT NOT NULL DEFAULT '',
            floor_count INT NOT NULL DEFAULT 0,
            apartments_count INT NOT NULL DEFAULT 0,
            commercials_count INT NOT NULL DEFAULT 0,
            gross_area DOUBLE PRECISION NOT NULL DEFAULT 0,
            elevators_count INT NOT NULL DEFAULT 0,
            status TEXT NOT NULL DEFAULT '',
            construction_end DATE
        )`,
		`CREATE TABLE IF NOT EXISTS apartment (
            id BIGSERIAL PRIMARY KEY,
            building_id BIGINT NOT NULL REFERENCES building(id),
            number INT NOT NULL DEFAULT 0,
            floor INT NOT NULL DEFAULT 0,
            description TEXT NOT NULL DEFAULT '',
            apartment_area DOUBLE PRECISION NOT NULL DEFAULT 0,
            apartment_type TEXT NOT NULL DEFAULT '',
            has_balcony BOOLEAN NOT NULL DEFAULT FALSE,
            bathroom_count INT NOT NULL DEFAULT 0,
            kitchen_area DOUBLE PRECISION NOT NULL DEFAULT 0,
            ceiling_height DOUBLE PRECISION NOT NULL DEFAULT 0,
            finishing_type TEXT NOT NULL DEFAULT '',
            price_per_sqr NUMERIC NOT NULL DEFAULT 0,
            total_price NUMERIC NOT NULL DEFAULT 0,
            status TEXT NOT NULL DEFAULT 'Free',
            orientation TEXT NOT NULL DEFAULT '',
            is_corner BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS commercial_unit (
            id BIGSERIAL PRIMARY KEY,
            building_id BIGINT NOT NULL REFERENCES building(id),
            number INT NOT NULL DEFAULT 0,
            floor INT NOT NULL DEFAULT 0,
            space_area DOUBLE PRECISION NOT NULL DEFAULT 0,
            ceiling_height DOUBLE PRECISION NOT NULL DEFAULT 0,
            finishing_type TEXT NOT NULL DEFAULT '',
            price_per_sqr NUMERIC NOT NULL DEFAULT 0,
            total_price NUMERIC NOT NULL DEFAULT 0,
            status TEXT NOT NULL DEFAULT 'Free',
            orientation TEXT NOT NULL DEFAULT '',
            is_corner BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS review (
            id BIGSERIAL PRIMARY KEY,
            complex_id BIGINT NOT NULL REFERENCES residential_complex(id),
            user_id BIGINT REFERENCES users(id),
            author_name TEXT NOT NULL DEFAULT '',
            rating INT NOT NULL,
            comment TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS favorites (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            object_id BIGINT NOT NULL,
            object_kind TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (user_id, object_id, object_kind)
        )`,
		`CREATE TABLE IF NOT EXISTS promotions (
            id BIGSERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            discount_percentage NUMERIC(5,2) NOT NULL,
            start_date DATE NOT NULL,
            end_date DATE NOT NULL,
            image_url TEXT NOT NULL DEFAULT '',
            complex_id BIGINT REFERENCES residential_complex(id),
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS image (
            id BIGSERIAL PRIMARY KEY,
            object_id BIGINT NOT NULL,
            object_kind TEXT NOT NULL,
            url TEXT NOT NULL,
            remote_id TEXT NOT NULL DEFAULT '',
            uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            object_id BIGINT NOT NULL,
            object_kind TEXT NOT NULL,
            order_kind TEXT NOT NULL,
            total_price NUMERIC NOT NULL DEFAULT 0,
            order_date DATE NOT NULL DEFAULT CURRENT_DATE,
            payment_kind TEXT NOT NULL DEFAULT '',
            booking_deposit NUMERIC NOT NULL DEFAULT 0,
            booking_expiration_date DATE,
            status TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS user_wallet (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            balance NUMERIC NOT NULL DEFAULT 0 CHECK (balance >= 0),
            loyalty_points NUMERIC NOT NULL DEFAULT 0 CHECK (loyalty_points >= 0),
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS wallet_transaction (
            id BIGSERIAL PRIMARY KEY,
            wallet_id BIGINT NOT NULL REFERENCES user_wallet(id),
            transaction_type TEXT NOT NULL,
            amount NUMERIC NOT NULL,
            balance_before NUMERIC NOT NULL,
            balance_after NUMERIC NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            order_id BIGINT REFERENCES orders(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, order_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_expiration ON orders(booking_expiration_date) WHERE status IN ('Pending', 'Offering')`,
		`CREATE INDEX IF NOT EXISTS idx_wallet_tx_wallet ON wallet_transaction(wallet_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_apartment_building ON apartment(building_id)`,
		`CREATE INDEX IF NOT EXISTS idx_commercial_building ON commercial_unit(building_id)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
