package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillo/internal/service"
	"fulfillo/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewSeededStore()
	auth := service.NewAuthService(st, 0, time.Hour)
	onboarding := service.NewOnboardingService(st, false)
	ops := service.NewOpsService(st)
	views := service.NewViewService(st, onboarding)

	router := gin.New()
	NewHandler(st, auth, views, ops, onboarding).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestLoginFailureIsGeneric(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "admin@fulfillo.com", "password": "wrong", "lang": "en",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials or account suspended.")
}

func TestPagesRequireSession(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/pages/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBrandOwnerMutationsAreForbidden(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "glowskin@brand.com", "glow-brand-secure")

	w := doJSON(t, router, http.MethodPatch, "/api/v1/orders/%23ORD-7721/status", token, gin.H{
		"status": "PACKED",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/v1/inventory/1/stock", token, gin.H{"delta": -1})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCanMutateOrders(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin@fulfillo.com", "admin-unique-7721")

	w := doJSON(t, router, http.MethodPatch, "/api/v1/orders/%23ORD-7720/status", token, gin.H{
		"status": "PACKED",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "PACKED")
}

func TestJoinRequestIsPublic(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/join", "", gin.H{
		"brand": "Acme", "email": "hi@acme.co", "phone": "+966", "products": "Widgets.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Regexp(t, `INQ-\d{4}`, w.Body.String())
}

func TestUnknownPageFallsBackToDashboard(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin@fulfillo.com", "admin-unique-7721")

	w := doJSON(t, router, http.MethodGet, "/api/v1/pages/payroll", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Page      string `json:"page"`
		Requested string `json:"requested"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dashboard", resp.Page)
	assert.Equal(t, "payroll", resp.Requested)
}

func TestManifestDownload(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin@fulfillo.com", "admin-unique-7721")

	// Move an order into the shipping queue first.
	w := doJSON(t, router, http.MethodPatch, "/api/v1/orders/%23ORD-7720/status", token, gin.H{
		"status": "SHIPPED",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/shipping/manifest.csv?view=outbound", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "fulfillo_outbound_")
	assert.Contains(t, w.Body.String(), "Order ID,Brand,Customer,Carrier,Tracking,Status,Date")
	assert.Contains(t, w.Body.String(), "#ORD-7720,TechGear,Sarah Connor,DHL,N/A,SHIPPED,2023-10-25")
}
