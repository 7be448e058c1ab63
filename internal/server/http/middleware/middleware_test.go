package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shopmart/shopmart/internal/domain/model"
	pkgAuth "github.com/shopmart/shopmart/internal/pkg/auth"
	testhelpers "github.com/shopmart/shopmart/internal/test"
	"github.com/shopmart/shopmart/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func identityRouter(auth TokenAuthenticator) (*gin.Engine, *model.User) {
	captured := &model.User{}
	router := gin.New()
	router.Use(Identify(auth))
	router.GET("/", func(c *gin.Context) {
		if user := CurrentUser(c); user != nil {
			*captured = *user
		} else {
			captured.ID = 0
		}
		c.Status(http.StatusOK)
	})
	return router, captured
}

func TestIdentifyAnonymousWithoutHeader(t *testing.T) {
	router, captured := identityRouter(&testhelpers.ShopFacadeStub{})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if captured.ID != 0 {
		t.Fatalf("expected anonymous request, got user %d", captured.ID)
	}
}

func TestIdentifyAnonymousOnBadToken(t *testing.T) {
	router, captured := identityRouter(&testhelpers.ShopFacadeStub{
		ParseAccessFn: func(string) (int64, error) { return 0, pkgAuth.ErrInvalidToken },
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if captured.ID != 0 {
		t.Fatalf("expected anonymous request, got user %d", captured.ID)
	}
}

func TestIdentifyAnonymousOnUnknownUser(t *testing.T) {
	router, captured := identityRouter(&testhelpers.ShopFacadeStub{
		UserByIDFn: func(context.Context, int64) (*model.User, error) { return nil, errors.New("gone") },
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if captured.ID != 0 {
		t.Fatalf("expected anonymous request, got user %d", captured.ID)
	}
}

func TestIdentifyStoresUser(t *testing.T) {
	router, captured := identityRouter(&testhelpers.ShopFacadeStub{
		ParseAccessFn: func(token string) (int64, error) {
			if token != "good" {
				t.Fatalf("unexpected token %q", token)
			}
			return 42, nil
		},
		UserByIDFn: func(_ context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Email: "user@example.com", Active: true}, nil
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if captured.ID != 42 {
		t.Fatalf("expected user 42, got %d", captured.ID)
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		res    usecase.Resource
		act    usecase.Action
		user   *model.User
		status int
	}{
		{name: "anonymous on private list", res: usecase.ResourceOrder, act: usecase.ActionList, status: http.StatusUnauthorized},
		{name: "user on admin list", res: usecase.ResourceOrderAdmin, act: usecase.ActionList, user: &model.User{ID: 1}, status: http.StatusForbidden},
		{name: "missing action", res: usecase.ResourceProduct, act: usecase.ActionCreate, user: &model.User{ID: 1, Superuser: true}, status: http.StatusMethodNotAllowed},
		{name: "allowed", res: usecase.ResourceOrder, act: usecase.ActionList, user: &model.User{ID: 1}, status: http.StatusOK},
		{name: "admin allowed", res: usecase.ResourceOrderAdmin, act: usecase.ActionList, user: &model.User{ID: 1, Superuser: true}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				if tt.user != nil {
					c.Set(UserContextKey, tt.user)
				}
			})
			router.GET("/", Authorize(tt.res, tt.act), func(c *gin.Context) { c.Status(http.StatusOK) })

			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestRoleOf(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := RoleOf(c); got != usecase.RoleAnonymous {
		t.Fatalf("expected anonymous role, got %v", got)
	}

	c.Set(UserContextKey, &model.User{ID: 1})
	if got := RoleOf(c); got != usecase.RoleUser {
		t.Fatalf("expected user role, got %v", got)
	}

	c.Set(UserContextKey, &model.User{ID: 1, Staff: true})
	if got := RoleOf(c); got != usecase.RoleAdmin {
		t.Fatalf("expected admin role for staff, got %v", got)
	}

	c.Set(UserContextKey, &model.User{ID: 1, Superuser: true})
	if got := RoleOf(c); got != usecase.RoleAdmin {
		t.Fatalf("expected admin role for superuser, got %v", got)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := extractToken(c); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}

	c.Request.Header.Set("Authorization", "bearer abc")
	if token := extractToken(c); token != "abc" {
		t.Fatalf("expected scheme to be case-insensitive, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Token abc")
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token for foreign scheme, got %q", token)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("plain"))))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("garbage"))))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken gzip stream, got %d", resp.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var logged bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelInfo {
			logged = true
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if !logged {
		t.Fatalf("expected request to be logged")
	}
}
