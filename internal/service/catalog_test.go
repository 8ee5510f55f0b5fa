package service

import (
	"errors"
	"testing"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

func validFields() MenuItemFields {
	return MenuItemFields{
		Name:        "Smoky BBQ Burger",
		Category:    domain.CategoryBurgers,
		Price:       420,
		Description: "Slow-smoked and saucy",
	}
}

func TestAdminOperationsForbiddenForNonAdmin(t *testing.T) {
	f := newFixture(t)
	f.loginCustomer(t)

	itemsBefore := len(f.store.Catalog)
	notifsBefore := len(f.store.Notifications)
	feeBefore := f.store.Config.DeliveryFee

	if _, err := f.svc.AddMenuItem(validFields()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("AddMenuItem: expected ErrForbidden, got %v", err)
	}
	if err := f.svc.DeleteMenuItem("burger-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("DeleteMenuItem: expected ErrForbidden, got %v", err)
	}
	if err := f.svc.SetOrderStatus("any", domain.OrderStatusDelivered); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("SetOrderStatus: expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.Broadcast("Sale", "50% off", domain.AudienceAll); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Broadcast: expected ErrForbidden, got %v", err)
	}
	if err := f.svc.SaveSiteConfig(domain.SiteConfig{Name: "X", DeliveryFee: 10}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("SaveSiteConfig: expected ErrForbidden, got %v", err)
	}

	if len(f.store.Catalog) != itemsBefore {
		t.Error("catalog changed despite forbidden operations")
	}
	if len(f.store.Notifications) != notifsBefore {
		t.Error("notification history changed despite forbidden operations")
	}
	if f.store.Config.DeliveryFee != feeBefore {
		t.Error("site config changed despite forbidden operations")
	}
}

func TestAdminOperationsForbiddenWhenAnonymous(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.AddMenuItem(validFields()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for anonymous session, got %v", err)
	}
}

func TestAddMenuItemPrependsWithFreshID(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)

	item, err := f.svc.AddMenuItem(validFields())
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a fresh id")
	}
	if item.Image != DefaultItemImage {
		t.Errorf("expected default image, got %q", item.Image)
	}

	catalog := f.svc.Catalog("")
	if catalog[0].ID != item.ID {
		t.Error("new item should lead the catalog")
	}
}

func TestAddMenuItemValidation(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)

	cases := map[string]MenuItemFields{
		"empty name":        {Category: domain.CategoryBurgers, Price: 100, Description: "x"},
		"bad category":      {Name: "X", Category: "Sushi", Price: 100, Description: "x"},
		"negative price":    {Name: "X", Category: domain.CategoryBurgers, Price: -1, Description: "x"},
		"empty description": {Name: "X", Category: domain.CategoryBurgers, Price: 100},
	}

	for name, fields := range cases {
		if _, err := f.svc.AddMenuItem(fields); !domain.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestEditMenuItemUnknown(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)

	if _, err := f.svc.EditMenuItem("missing", validFields()); !errors.Is(err, domain.ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestEditMenuItemKeepsImageWhenEmpty(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)

	fields := validFields()
	updated, err := f.svc.EditMenuItem("burger-1", fields)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.Image != "img-1" {
		t.Errorf("empty image field should keep the old picture, got %q", updated.Image)
	}
	if updated.Price != 420 {
		t.Errorf("expected price 420, got %v", updated.Price)
	}
}

func TestDeleteMenuItemKeepsCartLines(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)

	_ = f.svc.AddToCart("drink-1")

	if err := f.svc.DeleteMenuItem("drink-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	cart := f.svc.Cart()
	if len(cart.Lines) != 1 || cart.Lines[0].Name != "Lemonade" {
		t.Error("cart line should hold a copy, unaffected by catalog deletion")
	}
}

func TestCatalogFilter(t *testing.T) {
	f := newFixture(t)

	pizzas := f.svc.Catalog(domain.CategoryPizzas)
	if len(pizzas) != 1 || pizzas[0].Category != domain.CategoryPizzas {
		t.Errorf("unexpected filter result: %+v", pizzas)
	}
	if got := len(f.svc.Catalog("")); got != 3 {
		t.Errorf("expected full catalog of 3, got %d", got)
	}
}
