package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/config"
	"github.com/baspana/backend/internal/domain/model"
	pkgAuth "github.com/baspana/backend/internal/pkg/auth"
	"github.com/baspana/backend/internal/server/http/dto"
	"github.com/baspana/backend/internal/server/http/handlers"
	testhelpers "github.com/baspana/backend/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(facade *testhelpers.BaspanaFacadeStub) *gin.Engine {
	cfg := &config.Config{RunAddress: ":0", AllowedOrigins: "*"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, cfg, logger)
}

func serve(router *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicCatalogRoutes(t *testing.T) {
	router := newTestRouter(&testhelpers.BaspanaFacadeStub{})

	for _, path := range []string{"/api/complexes", "/api/apartments", "/api/commercials", "/api/promotions"} {
		if w := serve(router, http.MethodGet, path, "", nil); w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, w.Code)
		}
	}
}

func TestRegisterRoute(t *testing.T) {
	router := newTestRouter(&testhelpers.BaspanaFacadeStub{})

	body, _ := json.Marshal(dto.RegisterRequest{Email: "a@b.kz", Password: "secret"})
	w := serve(router, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(&testhelpers.BaspanaFacadeStub{})

	if w := serve(router, http.MethodGet, "/api/orders", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if w := serve(router, http.MethodGet, "/api/wallet", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAuthedRouteWithToken(t *testing.T) {
	router := newTestRouter(&testhelpers.BaspanaFacadeStub{})

	w := serve(router, http.MethodGet, "/api/wallet", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderCreateThroughRouter(t *testing.T) {
	router := newTestRouter(&testhelpers.BaspanaFacadeStub{})

	body, _ := json.Marshal(dto.CreateOrderRequest{
		ObjectID:   3,
		ObjectKind: "Apartment",
		OrderKind:  "Booking",
		TotalPrice: decimal.NewFromInt(20_000_000),
	})
	w := serve(router, http.MethodPost, "/api/orders", "valid", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestManageRoutesForbiddenForConsumers(t *testing.T) {
	facade := &testhelpers.BaspanaFacadeStub{}
	facade.ParseFn = func(string) (pkgAuth.Claims, error) {
		return pkgAuth.Claims{UserID: 1, Role: string(model.RoleConsumer)}, nil
	}
	router := newTestRouter(facade)

	if w := serve(router, http.MethodGet, "/api/manage/orders", "consumer-token", nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
	if w := serve(router, http.MethodDelete, "/api/manage/complexes/1", "consumer-token", nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

func TestManageRoutesForStaff(t *testing.T) {
	facade := &testhelpers.BaspanaFacadeStub{}
	facade.ParseFn = func(string) (pkgAuth.Claims, error) {
		return pkgAuth.Claims{UserID: 2, Role: string(model.RoleManager)}, nil
	}
	router := newTestRouter(facade)

	if w := serve(router, http.MethodGet, "/api/manage/orders", "manager-token", nil); w.Code != http.StatusOK {
		t.Fatalf("list orders: expected status 200, got %d", w.Code)
	}

	body, _ := json.Marshal(dto.ComplexRequest{Name: "Aspan Tau", City: "Almaty"})
	if w := serve(router, http.MethodPost, "/api/manage/complexes", "manager-token", body); w.Code != http.StatusCreated {
		t.Fatalf("create complex: expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(&testhelpers.BaspanaFacadeStub{})

	if w := serve(router, http.MethodGet, "/api/nope", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

var _ handlers.BaspanaFacade = (*testhelpers.BaspanaFacadeStub)(nil)
