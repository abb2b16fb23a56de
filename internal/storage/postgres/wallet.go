package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

type walletRepository struct {
	storage *Storage
}

type transactionRepository struct {
	storage *Storage
}

const walletColumns = `id, user_id, balance, loyalty_points, is_active, created_at, updated_at`

const transactionColumns = `id, wallet_id, transaction_type, amount, balance_before, balance_after, description, order_id, created_at`

func (r *walletRepository) Create(ctx context.Context, userID int64) (*model.Wallet, error) {
	const query = `INSERT INTO user_wallet (user_id) VALUES ($1)
                   RETURNING ` + walletColumns
	w, err := scanWallet(r.storage.pool.QueryRow(ctx, query, userID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return w, nil
}

func (r *walletRepository) GetByID(ctx context.Context, id int64) (*model.Wallet, error) {
	const query = `SELECT ` + walletColumns + ` FROM user_wallet WHERE id=$1`
	return scanWallet(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *walletRepository) GetByUserID(ctx context.Context, userID int64) (*model.Wallet, error) {
	const query = `SELECT ` + walletColumns + ` FROM user_wallet WHERE user_id=$1`
	return scanWallet(r.storage.pool.QueryRow(ctx, query, userID))
}

// Apply mutates the wallet and appends the ledger entry as one atomic unit.
// The wallet row is locked first, so concurrent debits against the same
// wallet serialize and cannot both pass the funds check on a stale balance.
func (r *walletRepository) Apply(ctx context.Context, req repository.TransactionRequest) (*model.Transaction, error) {
	var entry model.Transaction
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const sel = `SELECT ` + walletColumns + ` FROM user_wallet WHERE id=$1 FOR UPDATE`
		wallet, err := scanWallet(tx.QueryRow(ctx, sel, req.WalletID))
		if err != nil {
			return err
		}
		if !wallet.IsActive {
			return domainErrors.ErrWalletInactive
		}

		balanceBefore := wallet.Balance
		balanceAfter := balanceBefore
		loyalty := wallet.LoyaltyPoints

		switch {
		case req.Type.IsCredit():
			balanceAfter = balanceBefore.Add(req.Amount)
		case req.Type.IsDebit():
			balanceAfter = balanceBefore.Sub(req.Amount)
			if balanceAfter.IsNegative() {
				return domainErrors.ErrInsufficientFunds
			}
		case req.Type == model.TransactionLoyaltyEarned:
			loyalty = loyalty.Add(req.Amount)
		case req.Type == model.TransactionLoyaltySpent:
			if loyalty.LessThan(req.Amount) {
				return domainErrors.ErrInsufficientLoyaltyPoints
			}
			loyalty = loyalty.Sub(req.Amount)
		default:
			return fmt.Errorf("unknown transaction type %q", req.Type)
		}

		description := req.Description
		if description == "" {
			description = defaultDescription(req.Type, req.Amount)
		}

		const insert = `INSERT INTO wallet_transaction (wallet_id, transaction_type, amount, balance_before, balance_after, description, order_id)
                        VALUES ($1, $2, $3, $4, $5, $6, $7)
                        RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insert,
			req.WalletID, req.Type, req.Amount, balanceBefore, balanceAfter, description, req.OrderID,
		).Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return err
		}

		const update = `UPDATE user_wallet SET balance=$1, loyalty_points=$2, updated_at=NOW() WHERE id=$3`
		if _, err := tx.Exec(ctx, update, balanceAfter, loyalty, req.WalletID); err != nil {
			return err
		}

		entry.WalletID = req.WalletID
		entry.Type = req.Type
		entry.Amount = req.Amount
		entry.BalanceBefore = balanceBefore
		entry.BalanceAfter = balanceAfter
		entry.Description = description
		entry.OrderID = req.OrderID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *walletRepository) Balance(ctx context.Context, walletID int64) (*model.WalletBalance, error) {
	const query = `SELECT id, balance, loyalty_points, is_active FROM user_wallet WHERE id=$1`
	var b model.WalletBalance
	err := r.storage.pool.QueryRow(ctx, query, walletID).Scan(&b.WalletID, &b.Balance, &b.LoyaltyPoints, &b.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *walletRepository) SetActive(ctx context.Context, walletID int64, active bool) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE user_wallet SET is_active=$1, updated_at=NOW() WHERE id=$2`, active, walletID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) ListByWallet(ctx context.Context, walletID int64, txType *model.TransactionType, limit, offset int) ([]model.Transaction, int, error) {
	var b condBuilder
	b.add("wallet_id = $%d", walletID)
	if txType != nil {
		b.add("transaction_type = $%d", *txType)
	}
	where := b.where()

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallet_transaction`+where, b.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + transactionColumns + ` FROM wallet_transaction` + where +
		` ORDER BY created_at DESC` + limitOffset(&b, limit, offset)
	rows, err := r.storage.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.BalanceBefore, &t.BalanceAfter, &t.Description, &t.OrderID, &t.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func scanWallet(row pgx.Row) (*model.Wallet, error) {
	var w model.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.LoyaltyPoints, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func defaultDescription(txType model.TransactionType, amount decimal.Decimal) string {
	switch {
	case txType == model.TransactionLoyaltyEarned:
		return fmt.Sprintf("Earned %s loyalty points", amount.String())
	case txType == model.TransactionLoyaltySpent:
		return fmt.Sprintf("Spent %s loyalty points", amount.String())
	case txType.IsCredit():
		return fmt.Sprintf("Credited %s", amount.String())
	default:
		return fmt.Sprintf("Debited %s", amount.String())
	}
}
