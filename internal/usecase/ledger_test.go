package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/test"
	. "github.com/baspana/backend/internal/usecase"
)

func TestLedgerApplyRejectsUnknownType(t *testing.T) {
	wallets := &test.WalletRepositoryStub{}
	uc := NewLedgerUseCase(wallets, &test.TransactionRepositoryStub{})

	_, err := uc.Apply(context.Background(), repository.TransactionRequest{
		WalletID: 1,
		Type:     "Donation",
		Amount:   decimal.NewFromInt(100),
	})
	if !errors.Is(err, domainErrors.ErrInvalidTransactionType) {
		t.Fatalf("err = %v, want ErrInvalidTransactionType", err)
	}
	if len(wallets.Applied) != 0 {
		t.Fatal("repository reached on invalid type")
	}
}

func TestLedgerApplyRejectsNonPositiveAmount(t *testing.T) {
	uc := NewLedgerUseCase(&test.WalletRepositoryStub{}, &test.TransactionRepositoryStub{})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := uc.Apply(context.Background(), repository.TransactionRequest{
			WalletID: 1,
			Type:     model.TransactionDeposit,
			Amount:   amount,
		})
		if !errors.Is(err, domainErrors.ErrInvalidAmount) {
			t.Fatalf("amount %s: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestLedgerApplyPassesThrough(t *testing.T) {
	wallets := &test.WalletRepositoryStub{}
	uc := NewLedgerUseCase(wallets, &test.TransactionRepositoryStub{})

	tx, err := uc.Apply(context.Background(), repository.TransactionRequest{
		WalletID: 5,
		Type:     model.TransactionDeposit,
		Amount:   decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tx.WalletID != 5 || tx.Type != model.TransactionDeposit {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if len(wallets.Applied) != 1 {
		t.Fatalf("applied = %d, want 1", len(wallets.Applied))
	}
}

func TestLedgerTransactionsRejectsUnknownTypeFilter(t *testing.T) {
	uc := NewLedgerUseCase(&test.WalletRepositoryStub{}, &test.TransactionRepositoryStub{})

	bad := model.TransactionType("Donation")
	if _, _, err := uc.Transactions(context.Background(), 1, &bad, 10, 0); !errors.Is(err, domainErrors.ErrInvalidTransactionType) {
		t.Fatalf("err = %v, want ErrInvalidTransactionType", err)
	}
}

func TestLedgerTransactionsPassesThrough(t *testing.T) {
	txs := &test.TransactionRepositoryStub{
		Transactions: []model.Transaction{{ID: 1}, {ID: 2}},
	}
	uc := NewLedgerUseCase(&test.WalletRepositoryStub{}, txs)

	list, total, err := uc.Transactions(context.Background(), 1, nil, 10, 0)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(list) != 2 || total != 2 {
		t.Fatalf("got %d/%d entries, want 2/2", len(list), total)
	}
}
