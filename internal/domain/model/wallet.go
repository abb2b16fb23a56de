package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the per-user monetary and loyalty-point account. Balances are
// mutated only through the ledger; both stay non-negative.
type Wallet struct {
	ID            int64
	UserID        int64
	Balance       decimal.Decimal
	LoyaltyPoints decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransactionType enumerates the ledger entry kinds.
type TransactionType string

const (
	TransactionDeposit       TransactionType = "Deposit"
	TransactionWithdrawal    TransactionType = "Withdrawal"
	TransactionPurchase      TransactionType = "Purchase"
	TransactionRefund        TransactionType = "Refund"
	TransactionLoyaltyEarned TransactionType = "Loyalty Earned"
	TransactionLoyaltySpent  TransactionType = "Loyalty Spent"
	TransactionBonus         TransactionType = "Bonus"
	TransactionPenalty       TransactionType = "Penalty"
	TransactionTransferIn    TransactionType = "Transfer In"
	TransactionTransferOut   TransactionType = "Transfer Out"
)

// IsCredit reports whether the type increases the monetary balance.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionDeposit, TransactionRefund, TransactionBonus, TransactionTransferIn:
		return true
	}
	return false
}

// IsDebit reports whether the type decreases the monetary balance.
func (t TransactionType) IsDebit() bool {
	switch t {
	case TransactionWithdrawal, TransactionPenalty, TransactionTransferOut, TransactionPurchase:
		return true
	}
	return false
}

// IsLoyalty reports whether the type mutates loyalty points instead of balance.
func (t TransactionType) IsLoyalty() bool {
	return t == TransactionLoyaltyEarned || t == TransactionLoyaltySpent
}

// Valid reports whether the type is one of the known ledger kinds.
func (t TransactionType) Valid() bool {
	return t.IsCredit() || t.IsDebit() || t.IsLoyalty()
}

// Transaction is one immutable ledger entry. Loyalty entries snapshot the
// balance unchanged; the wallet row alone carries the loyalty counter.
type Transaction struct {
	ID            int64
	WalletID      int64
	Type          TransactionType
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Description   string
	OrderID       *int64
	CreatedAt     time.Time
}

// WalletBalance is the read-only balance view returned to callers.
type WalletBalance struct {
	WalletID      int64
	Balance       decimal.Decimal
	LoyaltyPoints decimal.Decimal
	IsActive      bool
}
