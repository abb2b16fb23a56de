package usecase

import (
	"context"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

// LedgerUseCase manages wallet balances through the immutable transaction
// ledger. Amounts are always positive; the transaction type decides direction.
type LedgerUseCase struct {
	wallets      repository.WalletRepository
	transactions repository.TransactionRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(w repository.WalletRepository, t repository.TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{wallets: w, transactions: t}
}

// Apply records one ledger entry and mutates the wallet accordingly.
func (u *LedgerUseCase) Apply(ctx context.Context, req repository.TransactionRequest) (*model.Transaction, error) {
	if !req.Type.Valid() {
		return nil, domainErrors.ErrInvalidTransactionType
	}
	if !req.Amount.IsPositive() {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.wallets.Apply(ctx, req)
}

// Balance returns the current balance view for a wallet.
func (u *LedgerUseCase) Balance(ctx context.Context, walletID int64) (*model.WalletBalance, error) {
	return u.wallets.Balance(ctx, walletID)
}

// WalletByUser fetches the wallet owned by a user.
func (u *LedgerUseCase) WalletByUser(ctx context.Context, userID int64) (*model.Wallet, error) {
	return u.wallets.GetByUserID(ctx, userID)
}

// Transactions returns ledger entries for a wallet, newest first, optionally
// filtered by type.
func (u *LedgerUseCase) Transactions(ctx context.Context, walletID int64, txType *model.TransactionType, limit, offset int) ([]model.Transaction, int, error) {
	if txType != nil && !txType.Valid() {
		return nil, 0, domainErrors.ErrInvalidTransactionType
	}
	return u.transactions.ListByWallet(ctx, walletID, txType, limit, offset)
}

// SetWalletActive toggles whether a wallet accepts new transactions.
func (u *LedgerUseCase) SetWalletActive(ctx context.Context, walletID int64, active bool) error {
	return u.wallets.SetActive(ctx, walletID, active)
}
