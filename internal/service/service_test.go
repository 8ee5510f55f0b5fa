package service

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shadow1264/freshbite-delivery/internal/bus"
	"github.com/shadow1264/freshbite-delivery/internal/domain"
	"github.com/shadow1264/freshbite-delivery/internal/store/memory"
)

const (
	adminEmail    = "admin@test.local"
	adminPassword = "secret"
	custEmail     = "customer@test.local"
	custPassword  = "hunter2"
)

var testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	store *memory.Store
	bus   *bus.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.New()
	eventBus := bus.New(zap.NewNop().Sugar())
	svc := New(store, eventBus, zap.NewNop().Sugar())

	svc.now = func() time.Time { return testTime }
	ids := 0
	svc.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}

	store.AddUser(domain.User{
		ID:       "admin-1",
		Name:     "Test Admin",
		Email:    adminEmail,
		Phone:    "01000000001",
		Password: adminPassword,
		IsAdmin:  true,
	})
	store.AddUser(domain.User{
		ID:       "cust-1",
		Name:     "Test Customer",
		Email:    custEmail,
		Phone:    "01000000002",
		Password: custPassword,
	})

	store.Catalog = []domain.MenuItem{
		{ID: "burger-1", Name: "Classic Burger", Category: domain.CategoryBurgers, Price: 300, Description: "A burger", Image: "img-1"},
		{ID: "pizza-1", Name: "Margherita", Category: domain.CategoryPizzas, Price: 450, Description: "A pizza", Image: "img-2"},
		{ID: "drink-1", Name: "Lemonade", Category: domain.CategoryDrinks, Price: 80, Description: "A drink", Image: "img-3"},
	}

	return &fixture{svc: svc, store: store, bus: eventBus}
}

func (f *fixture) loginAdmin(t *testing.T) {
	t.Helper()
	if _, err := f.svc.Login(adminEmail, adminPassword); err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
}

func (f *fixture) loginCustomer(t *testing.T) {
	t.Helper()
	if _, err := f.svc.Login(custEmail, custPassword); err != nil {
		t.Fatalf("customer login failed: %v", err)
	}
}
