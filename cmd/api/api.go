package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/shadow1264/freshbite-delivery/internal/bus"
	"github.com/shadow1264/freshbite-delivery/internal/ratelimiter"
	"github.com/shadow1264/freshbite-delivery/internal/service"
	"github.com/shadow1264/freshbite-delivery/internal/store/memory"
	"github.com/shadow1264/freshbite-delivery/internal/worker"
)

type application struct {
	config         config
	logger         *zap.SugaredLogger
	store          *memory.Store
	bus            *bus.Bus
	service        *service.Service
	rateLimiter    ratelimiter.Limiter
	presenceWorker *worker.PresenceWorker
}

type config struct {
	addr             string
	env              string
	corsOrigins      []string
	seedData         bool
	presenceInterval time.Duration
	rateLimiter      ratelimiter.Config
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           int(12 * time.Hour / time.Second),
	}))

	if app.config.rateLimiter.Enabled {
		r.Use(app.rateLimiterMiddleware)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/events", app.eventStreamHandler)

		r.Post("/auth/register", app.registerHandler)
		r.Post("/auth/login", app.loginHandler)
		r.Post("/auth/logout", app.logoutHandler)

		r.Get("/session", app.getSessionHandler)
		r.Post("/session/navigate", app.navigateHandler)
		r.Post("/session/category", app.selectCategoryHandler)
		r.Post("/session/admin-tab", app.switchAdminTabHandler)

		r.Get("/menu", app.listMenuHandler)
		r.Get("/menu/{item_id}/whatsapp-link", app.itemWhatsAppLinkHandler)

		r.Get("/cart", app.getCartHandler)
		r.Post("/cart/items", app.addToCartHandler)
		r.Put("/cart/items/{item_id}", app.updateQuantityHandler)
		r.Delete("/cart/items/{item_id}", app.removeFromCartHandler)
		r.Get("/cart/whatsapp-link", app.cartWhatsAppLinkHandler)

		r.Post("/orders", app.placeOrderHandler)
		r.Get("/orders", app.listOrdersHandler)

		r.Get("/settings", app.getSettingsHandler)
		r.Get("/notifications", app.listNotificationsHandler)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/menu", app.addMenuItemHandler)
			r.Put("/menu/{item_id}", app.editMenuItemHandler)
			r.Delete("/menu/{item_id}", app.deleteMenuItemHandler)

			r.Patch("/orders/{order_id}/status", app.setOrderStatusHandler)
			r.Get("/orders/{order_id}/audit", app.orderAuditHandler)

			r.Get("/users", app.listUsersHandler)
			r.Get("/users/online", app.listOnlineUsersHandler)

			r.Post("/notifications", app.broadcastHandler)

			r.Put("/settings", app.saveSettingsHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	app.presenceWorker.Start()

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		app.presenceWorker.Stop()

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
