package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/test"
	. "github.com/baspana/backend/internal/usecase"
)

func newAuthUseCaseForTest(users *test.UserRepositoryStub, wallets *test.WalletRepositoryStub) *AuthUseCase {
	return NewAuthUseCase(users, wallets, test.HasherStub{}, test.StrategyStub{})
}

func TestAuthRegisterProvisionsWallet(t *testing.T) {
	users := test.NewUserRepositoryStub()
	wallets := &test.WalletRepositoryStub{}
	uc := newAuthUseCaseForTest(users, wallets)

	usr, token, err := uc.Register(context.Background(), RegisterInput{
		Email:    "Ayan@Example.KZ",
		Password: "secret",
		City:     model.CityAlmaty,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("expected token")
	}
	if usr.Email != "ayan@example.kz" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.Role != model.RoleConsumer {
		t.Fatalf("role = %q, want Consumer", usr.Role)
	}
	if len(wallets.CreatedFor) != 1 || wallets.CreatedFor[0] != usr.ID {
		t.Fatalf("wallet not provisioned for user %d: %v", usr.ID, wallets.CreatedFor)
	}
}

func TestAuthRegisterRejectsEmptyCredentials(t *testing.T) {
	uc := newAuthUseCaseForTest(test.NewUserRepositoryStub(), &test.WalletRepositoryStub{})

	if _, _, err := uc.Register(context.Background(), RegisterInput{Email: " ", Password: "x"}); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.kz", Password: ""}); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCaseForTest(users, &test.WalletRepositoryStub{})

	in := RegisterInput{Email: "a@b.kz", Password: "secret"}
	if _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), in); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestAuthAuthenticate(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCaseForTest(users, &test.WalletRepositoryStub{})

	if _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.kz", Password: "secret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, token, err := uc.Authenticate(context.Background(), "a@b.kz", "secret"); err != nil || token == "" {
		t.Fatalf("Authenticate = %q, %v", token, err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "a@b.kz", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "nobody@b.kz", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthParseTokenEmpty(t *testing.T) {
	uc := newAuthUseCaseForTest(test.NewUserRepositoryStub(), &test.WalletRepositoryStub{})

	if _, err := uc.ParseToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}
