package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/middleware"
	"github.com/guttosm/sourcing-lens/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cfg RouterConfig) *gin.Engine {
	t.Helper()
	analyzer := service.NewAnalysisService(service.NewEngine(), service.DefaultCountryTable())
	return NewRouter(NewHealthHandler(), cfg, NewAnalysisRoutes(NewHandler(analyzer)))
}

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	health := doJSON(router, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, health.Code)
	assert.NotEmpty(t, health.Header().Get(middleware.RequestIDHeader))

	metricsResp := doJSON(router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, metricsResp.Code)
	assert.Contains(t, metricsResp.Body.String(), "http_requests_total")
}

func TestNewRouter_SwaggerBasicAuth(t *testing.T) {
	router := newTestRouter(t, RouterConfig{SwaggerUser: "docs", SwaggerPass: "secret"})

	w := doJSON(router, http.MethodGet, "/swagger/index.html", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "secret")
	authed := httptest.NewRecorder()
	router.ServeHTTP(authed, req)
	assert.Equal(t, http.StatusOK, authed.Code)
}

func TestNewRouter_APIKeyAuth(t *testing.T) {
	router := newTestRouter(t, RouterConfig{EnableAuth: true, APIKeys: map[string]bool{"k-1": true}})

	tests := []struct {
		name           string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{"missing key", "/api/countries", nil, http.StatusUnauthorized},
		{"wrong key", "/api/countries", map[string]string{middleware.APIKeyHeader: "nope"}, http.StatusUnauthorized},
		{"header key", "/api/countries", map[string]string{middleware.APIKeyHeader: "k-1"}, http.StatusOK},
		{"query key", "/api/countries?api_key=k-1", nil, http.StatusOK},
		{"health stays open", "/healthz", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, tt.path, "", tt.headers)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)
	router := newTestRouter(t, RouterConfig{RateLimiter: limiter})

	for i := 0; i < 2; i++ {
		w := doJSON(router, http.MethodGet, "/api/countries", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/countries", "", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, dto.ErrCodeRateLimit, decodeError(t, w).Error)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// infrastructure routes are not limited
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/healthz", "", nil).Code)
}

func TestNewRouter_CORS(t *testing.T) {
	router := newTestRouter(t, RouterConfig{CORSOrigins: []string{"https://app.sourcinglens.io"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/compare", nil)
	req.Header.Set("Origin", "https://app.sourcinglens.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.sourcinglens.io", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNewRouter_Compression(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}
