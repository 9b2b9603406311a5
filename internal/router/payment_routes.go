package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/skilodge/lesson-booking/internal/config"
	"github.com/skilodge/lesson-booking/internal/handler"
	"github.com/skilodge/lesson-booking/internal/middleware"
)

// RegisterPayments registers the payment endpoints under /v1. All routes
// require a valid JWT; booking routes need the USER role while settlement
// and team-level routes need OWNER. The token-bucket rate limiter guards
// every payment route, and history GETs go through the Redis response
// cache. rdb may be nil, in which case both middlewares are no-ops.
func RegisterPayments(e *echo.Echo, h *handler.PaymentHandler, jwtSecret string, rdb *redis.Client) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cached := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Booking side: students prepare, approve and cancel their own lessons.
	user := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("USER"),
		limiter,
	)
	user.POST("/payments/prepare", h.Prepare)
	user.POST("/payments/approve", h.Approve)
	user.POST("/lessons/:id/cancel", h.Cancel)
	user.GET("/payments/me", h.MyHistories, cached)

	// Owner side: histories across owned teams plus the settlement surface.
	owner := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
		limiter,
	)
	owner.GET("/payments/owner", h.OwnerHistories, cached)
	owner.GET("/teams/:id/payments", h.TeamHistories, cached)
	owner.GET("/settlements", h.Withdrawals)
	owner.GET("/settlements/balance", h.Balance)
}
