package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/server/http/dto"
	"github.com/baspana/backend/internal/server/http/middleware"
	testhelpers "github.com/baspana/backend/internal/test"
	"github.com/baspana/backend/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asConsumer(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.UserRoleContextKey, string(model.RoleConsumer))
	}
}

func asManager(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.UserRoleContextKey, string(model.RoleManager))
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Email: "a@b.kz", Password: "secret", City: "Almaty"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatal("expected auth header to be set")
	}

	var out dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Token == "" || out.User.Email == "" {
		t.Fatalf("incomplete response: %+v", out)
	}
}

func TestAuthHandlerRegisterForcesConsumerRole(t *testing.T) {
	var captured usecase.RegisterInput
	facade := testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
		captured = in
		return &model.User{ID: 1, Email: in.Email, Role: in.Role}, "token", nil
	}}

	body, _ := json.Marshal(dto.RegisterRequest{Email: "a@b.kz", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(facade).Register, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if captured.Role != model.RoleConsumer {
		t.Fatalf("expected consumer role, got %q", captured.Role)
	}
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterInput) (*model.User, string, error) {
		return nil, "", domainErrors.ErrAlreadyExists
	}}
	body, _ := json.Marshal(dto.RegisterRequest{Email: "a@b.kz", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(facade).Register, nil, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginUnauthorized(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}}
	body, _ := json.Marshal(dto.LoginRequest{Email: "a@b.kz", Password: "bad"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(facade).Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	var captured repository.NewOrder
	facade := testhelpers.BookingFacadeStub{CreateOrderFn: func(ctx context.Context, in repository.NewOrder) (*model.Order, error) {
		captured = in
		return &model.Order{ID: 7, UserID: in.UserID, ObjectID: in.ObjectID, ObjectKind: in.ObjectKind, Status: model.OrderStatusPending}, nil
	}}

	body, _ := json.Marshal(dto.CreateOrderRequest{
		ObjectID:    10,
		ObjectKind:  "Apartment",
		OrderKind:   "Booking",
		TotalPrice:  decimal.NewFromInt(25_000_000),
		PaymentKind: "Mortgage",
	})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Create, asConsumer(42), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.UserID != 42 {
		t.Fatalf("order not attributed to caller: %+v", captured)
	}
}

func TestOrderHandlerCreatePropertyTaken(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{CreateOrderFn: func(context.Context, repository.NewOrder) (*model.Order, error) {
		return nil, domainErrors.ErrPropertyUnavailable
	}}

	body, _ := json.Marshal(dto.CreateOrderRequest{ObjectID: 10, ObjectKind: "Apartment", TotalPrice: decimal.NewFromInt(1)})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Create, asConsumer(42), body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestOrderHandlerGetForeignOrderForbidden(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrderFn: func(ctx context.Context, id int64) (*model.Order, error) {
		return &model.Order{ID: id, UserID: 1}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/5", NewOrderHandler(facade).Get, asConsumer(2), nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/5", NewOrderHandler(facade).Get, asManager(2), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("manager expected status 200, got %d", resp.Code)
	}
}

func TestOrderHandlerListMineScopesFilter(t *testing.T) {
	var captured repository.OrderFilter
	facade := testhelpers.BookingFacadeStub{OrdersFn: func(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
		captured = filter
		return nil, 0, nil
	}}

	resp := performRequest(t, http.MethodGet, "/orders", "/orders?status=Pending", NewOrderHandler(facade).ListMine, asConsumer(42), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if captured.UserID == nil || *captured.UserID != 42 {
		t.Fatalf("filter not scoped to caller: %+v", captured.UserID)
	}
	if captured.Status == nil || *captured.Status != model.OrderStatusPending {
		t.Fatalf("status filter not parsed: %+v", captured.Status)
	}
}

func TestOrderHandlerUpdateInvalidSortMapsToBadRequest(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrdersFn: func(context.Context, repository.OrderFilter) ([]model.Order, int, error) {
		return nil, 0, domainErrors.ErrInvalidSortField
	}}

	resp := performRequest(t, http.MethodGet, "/orders", "/orders?sort_by=evil", NewOrderHandler(facade).ListMine, asConsumer(1), nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestWalletHandlerApplyRejectsStaffOnlyTypes(t *testing.T) {
	facade := testhelpers.WalletFacadeStub{}

	for _, txType := range []string{"Bonus", "Penalty", "Loyalty Earned", "Purchase"} {
		body, _ := json.Marshal(dto.TransactionRequest{Type: txType, Amount: decimal.NewFromInt(100)})
		resp := performRequest(t, http.MethodPost, "/wallet/transactions", "/wallet/transactions", NewWalletHandler(facade).Apply, asConsumer(1), body)
		if resp.Code != http.StatusForbidden {
			t.Fatalf("type %s: expected status 403, got %d", txType, resp.Code)
		}
	}
}

func TestWalletHandlerApplyDeposit(t *testing.T) {
	var captured repository.TransactionRequest
	facade := testhelpers.WalletFacadeStub{ApplyFn: func(ctx context.Context, req repository.TransactionRequest) (*model.Transaction, error) {
		captured = req
		return &model.Transaction{ID: 1, WalletID: req.WalletID, Type: req.Type, Amount: req.Amount}, nil
	}}

	body, _ := json.Marshal(dto.TransactionRequest{Type: "Deposit", Amount: decimal.NewFromInt(500)})
	resp := performRequest(t, http.MethodPost, "/wallet/transactions", "/wallet/transactions", NewWalletHandler(facade).Apply, asConsumer(1), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.WalletID != 10 {
		t.Fatalf("wallet not resolved from caller: %+v", captured)
	}
}

func TestWalletHandlerApplyInsufficientFunds(t *testing.T) {
	facade := testhelpers.WalletFacadeStub{ApplyFn: func(context.Context, repository.TransactionRequest) (*model.Transaction, error) {
		return nil, domainErrors.ErrInsufficientFunds
	}}

	body, _ := json.Marshal(dto.TransactionRequest{Type: "Withdrawal", Amount: decimal.NewFromInt(500)})
	resp := performRequest(t, http.MethodPost, "/wallet/transactions", "/wallet/transactions", NewWalletHandler(facade).Apply, asConsumer(1), body)
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected status 402, got %d", resp.Code)
	}
}

func TestWalletHandlerSetActiveRequiresBody(t *testing.T) {
	facade := testhelpers.WalletFacadeStub{}

	resp := performRequest(t, http.MethodPatch, "/wallets/:id/active", "/wallets/3/active", NewWalletHandler(facade).SetActive, asManager(1), []byte(`{}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/wallets/:id/active", "/wallets/3/active", NewWalletHandler(facade).SetActive, asManager(1), []byte(`{"is_active":false}`))
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestCatalogHandlerGetComplexNotFound(t *testing.T) {
	facade := &testhelpers.CatalogFacadeStub{}

	resp := performRequest(t, http.MethodGet, "/complexes/:id", "/complexes/9", NewCatalogHandler(facade).GetComplex, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCatalogHandlerCreateApartment(t *testing.T) {
	facade := &testhelpers.CatalogFacadeStub{}

	body, _ := json.Marshal(dto.ApartmentRequest{BuildingID: 2, Number: 14, Floor: 3, TotalPrice: decimal.NewFromInt(30_000_000)})
	resp := performRequest(t, http.MethodPost, "/apartments", "/apartments", NewCatalogHandler(facade).CreateApartment, asManager(1), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestSocialHandlerPostReviewBadRating(t *testing.T) {
	reviews := testhelpers.ReviewFacadeStub{PostReviewFn: func(context.Context, repository.NewReview) (*model.Review, error) {
		return nil, domainErrors.ErrInvalidRating
	}}
	handler := NewSocialHandler(reviews, testhelpers.FavoriteFacadeStub{}, testhelpers.PromotionFacadeStub{})

	body, _ := json.Marshal(dto.ReviewRequest{ComplexID: 1, Rating: 9})
	resp := performRequest(t, http.MethodPost, "/reviews", "/reviews", handler.PostReview, asConsumer(1), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestSocialHandlerRemoveFavoriteScopedToUser(t *testing.T) {
	var gotUser, gotFavorite int64
	favorites := testhelpers.FavoriteFacadeStub{RemoveFavoriteFn: func(ctx context.Context, userID, favoriteID int64) error {
		gotUser, gotFavorite = userID, favoriteID
		return nil
	}}
	handler := NewSocialHandler(testhelpers.ReviewFacadeStub{}, favorites, testhelpers.PromotionFacadeStub{})

	resp := performRequest(t, http.MethodDelete, "/favorites/:id", "/favorites/8", handler.RemoveFavorite, asConsumer(3), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if gotUser != 3 || gotFavorite != 8 {
		t.Fatalf("remove not scoped: user=%d favorite=%d", gotUser, gotFavorite)
	}
}

func TestImageHandlerListRequiresObjectRef(t *testing.T) {
	handler := NewImageHandler(testhelpers.ImageFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/images", "/images", handler.List, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/images", "/images?object_id=3&object_kind=Apartment", handler.List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}
