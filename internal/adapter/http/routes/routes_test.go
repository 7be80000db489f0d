package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paulocell_pdv/internal/app"
	"paulocell_pdv/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Config{
		StorageDriver: config.StorageMemory,
		KeyPrefix:     "routes_",
		JWTSecret:     "secret",
		JWTExpiry:     time.Hour,
		AdminUsername: "admin",
		AdminPassword: "s3nha",
		PaymentMock:   true,
		SMSMock:       true,
		CORSOrigins:   []string{"http://localhost:5173"},
	}
	c, err := app.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(c.Close)
	return NewRouter(cfg, NewHandlers(c))
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newTestServer(t)
	w := do(r, http.MethodGet, "/v1/ping", "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	r := newTestServer(t)
	for _, path := range []string{"/v1/customers", "/v1/dashboard", "/v1/backup", "/v1/documents/trash"} {
		if w := do(r, http.MethodGet, path, "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}
	if w := do(r, http.MethodGet, "/v1/customers", "", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an invalid token, got %d", w.Code)
	}
}

func TestRouter_LoginAndCustomerFlow(t *testing.T) {
	r := newTestServer(t)

	w := do(r, http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"errada"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	w = do(r, http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"s3nha"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var tok struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tok); err != nil || tok.AccessToken == "" {
		t.Fatalf("unexpected token body %s", w.Body.String())
	}

	w = do(r, http.MethodPost, "/v1/customers", `{"name":"Maria"}`, tok.AccessToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("create customer: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/v1/customers", "", tok.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("list customers: %d %s", w.Code, w.Body.String())
	}
	var list struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || list.Total != 1 {
		t.Fatalf("unexpected list body %s", w.Body.String())
	}

	if w := do(r, http.MethodGet, "/v1/customers/trash", "", tok.AccessToken); w.Code != http.StatusOK {
		t.Fatalf("trash listing must not be captured by /:id, got %d", w.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/v1/customers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}
