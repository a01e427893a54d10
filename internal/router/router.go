package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-calendar/internal/config"
	"github.com/iliyamo/event-calendar/internal/handler"
	"github.com/iliyamo/event-calendar/internal/middleware"
)

// RegisterRoutes registers routes that carry no middleware on the provided
// Echo instance. Currently it exposes only a health check, which must stay
// reachable even when Redis or the upstream API are down.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCalendar registers the calendar view endpoints under /v1 with
// their full middleware chain. Order matters: the request id comes first
// so every later log line can carry it, the viewer is resolved before the
// cache so cache keys can include the identity, and the rate limiter sits
// behind the cache because it guards the upstream API: a cache hit never
// reaches the upstream, so it spends no budget.
//
// The rdb client may be nil; cache and rate limiting then silently
// disable and every render goes to the upstream.
func RegisterCalendar(e *echo.Echo, h *handler.CalendarHandler, cfg config.Config, profiles middleware.ProfileSource, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.RequestID())
	g.Use(middleware.ViewerContext(cfg.JWTSecret, profiles))
	g.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	g.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	g.GET("/calendar", h.GetMonth)
	g.GET("/calendar/ics", h.GetMonthICS)
}
