package test

import (
	"context"
	"errors"
	"io"

	"github.com/baspana/backend/internal/usecase"

	pkgAuth "github.com/baspana/backend/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64, string) (string, error)
	ParseFn func(string) (pkgAuth.Claims, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64, role string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, role)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{UserID: 1, Role: "Consumer"}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Claims  pkgAuth.Claims
	Err     error
	ParseFn func(string) (pkgAuth.Claims, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return pkgAuth.Claims{}, s.Err
	}
	return s.Claims, nil
}

// ImageHostStub simulates the external image host.
type ImageHostStub struct {
	UploadFn func(context.Context, string, io.Reader) (*usecase.HostedImage, error)
	DeleteFn func(context.Context, string) error
	Deleted  []string
}

// Upload returns configured upload results.
func (s *ImageHostStub) Upload(ctx context.Context, filename string, body io.Reader) (*usecase.HostedImage, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, filename, body)
	}
	return &usecase.HostedImage{URL: "https://img.example/" + filename, RemoteID: "remote-1"}, nil
}

// Delete records deletions of hosted binaries.
func (s *ImageHostStub) Delete(ctx context.Context, remoteID string) error {
	s.Deleted = append(s.Deleted, remoteID)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, remoteID)
	}
	return nil
}
