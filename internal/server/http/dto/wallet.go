package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
)

// TransactionRequest describes one ledger mutation payload.
type TransactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OrderID     *int64          `json:"order_id"`
}

// TransactionResponse describes one ledger entry.
type TransactionResponse struct {
	ID            int64           `json:"id"`
	WalletID      int64           `json:"wallet_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Description   string          `json:"description"`
	OrderID       *int64          `json:"order_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionListResponse carries one page of ledger entries.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// BalanceResponse is the read-only wallet balance view.
type BalanceResponse struct {
	WalletID      int64           `json:"wallet_id"`
	Balance       decimal.Decimal `json:"balance"`
	LoyaltyPoints decimal.Decimal `json:"loyalty_points"`
	IsActive      bool            `json:"is_active"`
}

// WalletResponse describes a wallet row.
type WalletResponse struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Balance       decimal.Decimal `json:"balance"`
	LoyaltyPoints decimal.Decimal `json:"loyalty_points"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewTransactionResponse maps a ledger entry to its wire form.
func NewTransactionResponse(tx *model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		WalletID:      tx.WalletID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		Description:   tx.Description,
		OrderID:       tx.OrderID,
		CreatedAt:     tx.CreatedAt,
	}
}
