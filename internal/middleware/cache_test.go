package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skilodge/lesson-booking/internal/config"
)

func cacheCtx(t *testing.T, target, userID string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c
}

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		KeyStrategy: "path_query",
		Prefix:      "cache",
	}
}

func TestCacheKeyIsolatesUsers(t *testing.T) {
	cfg := testCacheConfig()
	a := cacheKeyFrom(cfg, cacheCtx(t, "/v1/payments/me", "9"))
	b := cacheKeyFrom(cfg, cacheCtx(t, "/v1/payments/me", "10"))
	if a == b {
		t.Fatalf("users 9 and 10 share cache key %s", a)
	}
	// The same user hitting the same path must keep hitting one entry.
	if again := cacheKeyFrom(cfg, cacheCtx(t, "/v1/payments/me", "9")); again != a {
		t.Fatalf("key not stable for one user: %s vs %s", a, again)
	}
}

func TestCacheKeyIsolatesConcretePaths(t *testing.T) {
	// Both requests resolve to the /v1/teams/:id/payments template; the key
	// must come from the concrete path so team 3 and team 5 never share.
	cfg := testCacheConfig()
	a := cacheKeyFrom(cfg, cacheCtx(t, "/v1/teams/3/payments", "9"))
	b := cacheKeyFrom(cfg, cacheCtx(t, "/v1/teams/5/payments", "9"))
	if a == b {
		t.Fatalf("teams 3 and 5 share cache key %s", a)
	}
}

func TestCacheKeySeparatesQueries(t *testing.T) {
	cfg := testCacheConfig()
	a := cacheKeyFrom(cfg, cacheCtx(t, "/v1/payments/me?page=1", "9"))
	b := cacheKeyFrom(cfg, cacheCtx(t, "/v1/payments/me?page=2", "9"))
	if a == b {
		t.Fatalf("distinct queries share cache key %s", a)
	}
}

func TestRateKeyUsesAuthenticatedSubject(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user_route"}
	a := buildRateKey(cfg, cacheCtx(t, "/v1/payments/prepare", "9"))
	b := buildRateKey(cfg, cacheCtx(t, "/v1/payments/prepare", "10"))
	if a == b {
		t.Fatalf("users 9 and 10 share rate-limit bucket %s", a)
	}
	anon := buildRateKey(cfg, cacheCtx(t, "/v1/payments/prepare", ""))
	if anon == a {
		t.Fatalf("anonymous request shares bucket with user 9: %s", anon)
	}
}
