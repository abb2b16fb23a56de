package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/server/http/dto"
)

// Consumers move their own money only through these types. Everything else
// (bonuses, penalties, loyalty, purchases) is recorded by staff or by the
// order flow.
var selfServeTypes = map[model.TransactionType]struct{}{
	model.TransactionDeposit:    {},
	model.TransactionWithdrawal: {},
}

// WalletHandler processes wallet and ledger endpoints.
type WalletHandler struct {
	facade WalletFacade
}

// NewWalletHandler creates WalletHandler instance.
func NewWalletHandler(facade WalletFacade) *WalletHandler {
	return &WalletHandler{facade: facade}
}

// Wallet handles GET /api/wallet.
func (h *WalletHandler) Wallet(c *gin.Context) {
	wallet, err := h.facade.WalletByUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, walletResponse(wallet))
}

// Balance handles GET /api/wallet/balance.
func (h *WalletHandler) Balance(c *gin.Context) {
	wallet, err := h.facade.WalletByUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	balance, err := h.facade.WalletBalance(c.Request.Context(), wallet.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		WalletID:      balance.WalletID,
		Balance:       balance.Balance,
		LoyaltyPoints: balance.LoyaltyPoints,
		IsActive:      balance.IsActive,
	})
}

// Apply handles POST /api/wallet/transactions against the caller's wallet.
func (h *WalletHandler) Apply(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	txType := model.TransactionType(req.Type)
	if _, ok := selfServeTypes[txType]; !ok {
		c.Status(http.StatusForbidden)
		return
	}

	wallet, err := h.facade.WalletByUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	tx, err := h.facade.ApplyTransaction(c.Request.Context(), repository.TransactionRequest{
		WalletID:    wallet.ID,
		Type:        txType,
		Amount:      req.Amount,
		Description: req.Description,
		OrderID:     req.OrderID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// Transactions handles GET /api/wallet/transactions.
func (h *WalletHandler) Transactions(c *gin.Context) {
	wallet, err := h.facade.WalletByUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.listTransactions(c, wallet.ID)
}

// ApplyToWallet handles POST /api/manage/wallets/:id/transactions.
func (h *WalletHandler) ApplyToWallet(c *gin.Context) {
	walletID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	tx, err := h.facade.ApplyTransaction(c.Request.Context(), repository.TransactionRequest{
		WalletID:    walletID,
		Type:        model.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		OrderID:     req.OrderID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// WalletTransactions handles GET /api/manage/wallets/:id/transactions.
func (h *WalletHandler) WalletTransactions(c *gin.Context) {
	walletID, ok := idParam(c, "id")
	if !ok {
		return
	}
	h.listTransactions(c, walletID)
}

// SetActive handles PATCH /api/manage/wallets/:id/active.
func (h *WalletHandler) SetActive(c *gin.Context) {
	walletID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetWalletActive(c.Request.Context(), walletID, *req.IsActive); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WalletHandler) listTransactions(c *gin.Context, walletID int64) {
	var txType *model.TransactionType
	if raw := c.Query("type"); raw != "" {
		t := model.TransactionType(raw)
		txType = &t
	}

	txs, total, err := h.facade.Transactions(c.Request.Context(), walletID, txType, queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		items = append(items, dto.NewTransactionResponse(&txs[i]))
	}
	c.JSON(http.StatusOK, dto.TransactionListResponse{Items: items, Total: total})
}

func walletResponse(w *model.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:            w.ID,
		UserID:        w.UserID,
		Balance:       w.Balance,
		LoyaltyPoints: w.LoyaltyPoints,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
	}
}
