package main

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shadow1264/freshbite-delivery/internal/bootstrap"
	"github.com/shadow1264/freshbite-delivery/internal/bus"
	"github.com/shadow1264/freshbite-delivery/internal/env"
	"github.com/shadow1264/freshbite-delivery/internal/ratelimiter"
	"github.com/shadow1264/freshbite-delivery/internal/service"
	"github.com/shadow1264/freshbite-delivery/internal/store/memory"
	"github.com/shadow1264/freshbite-delivery/internal/worker"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:             env.GetString("ADDR", ":8080"),
		env:              env.GetString("ENV", "development"),
		corsOrigins:      strings.Split(env.GetString("CORS_ORIGINS", "*"), ","),
		seedData:         env.GetBool("SEED_DATA", true),
		presenceInterval: env.GetDuration("PRESENCE_INTERVAL", 30*time.Second),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// state store + event bus
	store := memory.New()
	eventBus := bus.New(logger)

	if cfg.seedData {
		bootstrap.Seed(store)
		logger.Infow("seeded store",
			"users", len(store.Users),
			"menu_items", len(store.Catalog),
			"orders", len(store.Orders),
		)
	}

	// domain operations
	svc := service.New(store, eventBus, logger)

	// presence refresh worker
	presenceWorker := worker.NewPresenceWorker(svc, cfg.presenceInterval, logger)

	app := &application{
		config:         cfg,
		logger:         logger,
		store:          store,
		bus:            eventBus,
		service:        svc,
		rateLimiter:    rateLimiter,
		presenceWorker: presenceWorker,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
