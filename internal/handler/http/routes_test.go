package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpulse/socialpulse/internal/config"
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/service"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/models"
)

// newTestRouter wires real services over a snapshot store behind the full
// chi router, exercising routing, middleware, and handlers together.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	snapshot, err := store.NewSnapshotStore(filepath.Join(t.TempDir(), "state.json"), logger.Nop())
	require.NoError(t, err)

	storages := store.Storages{
		UserRepository:    snapshot,
		AccountRepository: snapshot,
		PostRepository:    snapshot,
	}

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "routes-test-key",
			TokenIssuer:   "socialpulse",
			TokenDuration: time.Hour,
		},
	}

	services := service.NewServices(storages, cfg, logger.Nop())
	return NewHandler(services, "test", logger.Nop()).Init()
}

func do(t *testing.T, router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// registerAndLogin runs the full auth flow and returns the session token.
func registerAndLogin(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","email":"alice@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	return login.Token
}

// TestRoutes_FullFlow walks a user through registration, login, account
// linking, posting, and analytics through the real router.
func TestRoutes_FullFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Connect an account.
	rec := do(t, router, http.MethodPost, "/api/accounts", token,
		`{"platform":"instagram","account_name":"alice_insta"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// First listing comes from the store, the second from the cache.
	rec = do(t, router, http.MethodGet, "/api/accounts", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var accounts models.AccountsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
	assert.False(t, accounts.FromCache)
	assert.Equal(t, 1, accounts.Total)

	rec = do(t, router, http.MethodGet, "/api/accounts", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
	assert.True(t, accounts.FromCache)

	// Add a post against the connected account.
	rec = do(t, router, http.MethodPost, "/api/posts", token,
		`{"account_id":1,"content":"launch day! #ai","likes":120,"comments":30}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/posts", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var posts models.PostsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Equal(t, 1, posts.Total)

	// Analytics endpoints answer over the stored series.
	rec = do(t, router, http.MethodGet, "/api/insights", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/analytics/summary?period=30", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"period":"30 days"`)

	rec = do(t, router, http.MethodGet, "/api/stats", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.UserStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.PostsCount)
	assert.Equal(t, int64(150), stats.TotalEngagement)
}

// TestRoutes_ProtectedWithoutToken verifies that every protected route group
// rejects unauthenticated requests.
func TestRoutes_ProtectedWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/accounts"},
		{http.MethodPost, "/api/posts"},
		{http.MethodGet, "/api/insights"},
		{http.MethodGet, "/api/analytics/forecast"},
		{http.MethodGet, "/api/export"},
	}

	for _, route := range protected {
		rec := do(t, router, route.method, route.target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.target)
	}
}

// TestRoutes_HealthIsPublic verifies the liveness route requires no token.
func TestRoutes_HealthIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRoutes_TraceIDHeader verifies that responses carry a trace id and that
// an inbound trace id is propagated unchanged.
func TestRoutes_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/health", "", "")
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Trace-ID", "trace-12345")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-12345", rec.Header().Get("X-Trace-ID"))
}
