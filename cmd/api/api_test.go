package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shadow1264/freshbite-delivery/internal/bootstrap"
	"github.com/shadow1264/freshbite-delivery/internal/bus"
	"github.com/shadow1264/freshbite-delivery/internal/ratelimiter"
	"github.com/shadow1264/freshbite-delivery/internal/service"
	"github.com/shadow1264/freshbite-delivery/internal/store/memory"
	"github.com/shadow1264/freshbite-delivery/internal/worker"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := zap.NewNop().Sugar()
	store := memory.New()
	eventBus := bus.New(logger)
	bootstrap.Seed(store)
	svc := service.New(store, eventBus, logger)

	return &application{
		config: config{
			addr:             ":0",
			env:              "test",
			corsOrigins:      []string{"*"},
			presenceInterval: time.Minute,
			rateLimiter:      ratelimiter.Config{Enabled: false},
		},
		logger:         logger,
		store:          store,
		bus:            eventBus,
		service:        svc,
		rateLimiter:    ratelimiter.NewFixedWindowLimiter(100, time.Second),
		presenceWorker: worker.NewPresenceWorker(svc, time.Minute, logger),
	}
}

func TestHealthCheckHandler(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %s", body["status"])
	}
}

func TestAddToCartEndpoint(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	itemID := app.store.Catalog[0].ID
	payload, _ := json.Marshal(map[string]string{"item_id": itemID})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var summary service.CartSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].Quantity != 1 {
		t.Errorf("unexpected cart summary: %+v", summary)
	}
}

func TestAddToCartUnknownItemReturns404(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	payload, _ := json.Marshal(map[string]string{"item_id": "no-such-item"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestAdminEndpointForbiddenWhenAnonymous(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	payload, _ := json.Marshal(map[string]string{
		"title":    "Sale",
		"message":  "50% off",
		"audience": "all",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/notifications", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	payload, _ := json.Marshal(map[string]string{
		"email":    bootstrap.AdminEmail,
		"password": bootstrap.AdminPassword,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	session := app.service.Session()
	if session.CurrentUser == nil || !session.CurrentUser.IsAdmin {
		t.Error("expected the session to be authenticated as admin")
	}
}
