package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/event-calendar/internal/calendar"   // Month-view core
	"github.com/iliyamo/event-calendar/internal/config"     // Internal config loader
	"github.com/iliyamo/event-calendar/internal/handler"    // HTTP handlers
	"github.com/iliyamo/event-calendar/internal/repository" // Upstream EMS API access
	"github.com/iliyamo/event-calendar/internal/router"     // Internal router setup
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// All data access goes through the upstream EMS API; there is no
	// local database to open.
	client := repository.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	events := repository.NewEventRepo(client)
	tickets := repository.NewTicketRepo(client)
	profiles := repository.NewProfileRepo(client)

	loader := calendar.NewLoader(events, tickets)
	h := handler.NewCalendarHandler(loader)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterCalendar(e, h, cfg, profiles, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, upstream=%s)", addr, cfg.Env, cfg.UpstreamBaseURL)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
