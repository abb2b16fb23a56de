package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/baspana/backend/internal/domain/model"
	pkgAuth "github.com/baspana/backend/internal/pkg/auth"
	testhelpers "github.com/baspana/backend/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(parser TokenParser) (*gin.Engine, *pkgAuth.Claims) {
	var seen pkgAuth.Claims
	router := gin.New()
	router.GET("/protected", AuthRequired(parser), func(c *gin.Context) {
		id, _ := c.Get(UserIDContextKey)
		role, _ := c.Get(UserRoleContextKey)
		seen.UserID, _ = id.(int64)
		seen.Role, _ = role.(string)
		c.Status(http.StatusOK)
	})
	return router, &seen
}

func TestAuthRequiredNoToken(t *testing.T) {
	router, _ := newProtectedRouter(testhelpers.TokenParserStub{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	parser := testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken}
	router, _ := newProtectedRouter(parser)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAuthRequiredBearerToken(t *testing.T) {
	parser := testhelpers.TokenParserStub{Claims: pkgAuth.Claims{UserID: 42, Role: string(model.RoleManager)}}
	router, seen := newProtectedRouter(parser)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if seen.UserID != 42 || seen.Role != string(model.RoleManager) {
		t.Fatalf("claims not propagated: %+v", seen)
	}
}

func TestAuthRequiredCookieToken(t *testing.T) {
	parser := testhelpers.TokenParserStub{Claims: pkgAuth.Claims{UserID: 7, Role: string(model.RoleConsumer)}}
	router, seen := newProtectedRouter(parser)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if seen.UserID != 7 {
		t.Fatalf("claims not propagated: %+v", seen)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		set  bool
		want int
	}{
		{name: "allowed role", role: string(model.RoleManager), set: true, want: http.StatusOK},
		{name: "forbidden role", role: string(model.RoleConsumer), set: true, want: http.StatusForbidden},
		{name: "missing role", set: false, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/manage",
				func(c *gin.Context) {
					if tt.set {
						c.Set(UserRoleContextKey, tt.role)
					}
				},
				RequireRole(model.RoleAdmin, model.RoleManager),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage", nil))
			if w.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestDecompressRequestGzipBody(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"hello":"world"}`)); err != nil {
		t.Fatalf("compress body: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	var body []byte
	router := gin.New()
	router.POST("/echo", DecompressRequest(), func(c *gin.Context) {
		body, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if string(body) != `{"hello":"world"}` {
		t.Fatalf("body not decompressed: %q", body)
	}
}

func TestDecompressRequestBadGzip(t *testing.T) {
	router := gin.New()
	router.POST("/echo", DecompressRequest(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestDecompressRequestPlainBodyUntouched(t *testing.T) {
	var body []byte
	router := gin.New()
	router.POST("/echo", DecompressRequest(), func(c *gin.Context) {
		body, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("plain")))
	if string(body) != "plain" {
		t.Fatalf("plain body modified: %q", body)
	}
}

func TestRequestLogger(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))

	router := gin.New()
	router.GET("/ping", RequestLogger(logger), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	logged := out.String()
	if !strings.Contains(logged, `"path":"/ping"`) || !strings.Contains(logged, `"status":204`) {
		t.Fatalf("request not logged: %s", logged)
	}
}

func TestSetAuthCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SetAuthCookie(c, "tok-123")

	if got := w.Header().Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("auth header not set: %q", got)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), authCookieName+"=tok-123") {
		t.Fatalf("cookie not set: %q", w.Header().Get("Set-Cookie"))
	}
}
