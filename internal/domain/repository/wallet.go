package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
)

// TransactionRequest describes one ledger mutation to apply against a wallet.
type TransactionRequest struct {
	WalletID    int64
	Type        model.TransactionType
	Amount      decimal.Decimal
	Description string
	OrderID     *int64
}

// WalletRepository manages wallet rows. Apply performs the balance check,
// balance/loyalty mutation and transaction insert as one atomic unit with the
// wallet row locked; a failure leaves the wallet unchanged.
type WalletRepository interface {
	Create(ctx context.Context, userID int64) (*model.Wallet, error)
	GetByID(ctx context.Context, id int64) (*model.Wallet, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Wallet, error)
	Apply(ctx context.Context, req TransactionRequest) (*model.Transaction, error)
	Balance(ctx context.Context, walletID int64) (*model.WalletBalance, error)
	SetActive(ctx context.Context, walletID int64, active bool) error
}

// TransactionRepository provides read access to the immutable ledger.
type TransactionRepository interface {
	ListByWallet(ctx context.Context, walletID int64, txType *model.TransactionType, limit, offset int) ([]model.Transaction, int, error)
}
