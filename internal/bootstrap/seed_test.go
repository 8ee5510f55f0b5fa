package bootstrap

import (
	"testing"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
	"github.com/shadow1264/freshbite-delivery/internal/store/memory"
)

func TestSeedStartsNonEmptyWithAdmin(t *testing.T) {
	store := memory.New()
	Seed(store)

	admin := store.FindUserByEmail(AdminEmail)
	if admin == nil {
		t.Fatal("expected a seeded admin account")
	}
	if !admin.IsAdmin {
		t.Error("seeded account should have the admin flag")
	}

	if len(store.Catalog) != len(domain.Categories)*itemsPerCategory {
		t.Errorf("expected %d menu items, got %d", len(domain.Categories)*itemsPerCategory, len(store.Catalog))
	}
	if len(store.Orders) != seedOrderCount {
		t.Errorf("expected %d seeded orders, got %d", seedOrderCount, len(store.Orders))
	}
}

func TestSeedItemsAreValid(t *testing.T) {
	store := memory.New()
	Seed(store)

	seen := make(map[string]bool)
	for _, item := range store.Catalog {
		if seen[item.ID] {
			t.Errorf("duplicate item id %s", item.ID)
		}
		seen[item.ID] = true

		if !item.Category.Valid() {
			t.Errorf("item %s has invalid category %q", item.Name, item.Category)
		}
		if item.Price < 0 {
			t.Errorf("item %s has negative price", item.Name)
		}
		if item.Image == "" || item.Description == "" {
			t.Errorf("item %s missing image or description", item.Name)
		}
	}
}

func TestSeedOrdersHaveConsistentLines(t *testing.T) {
	store := memory.New()
	Seed(store)

	for _, order := range store.Orders {
		if len(order.Items) == 0 {
			t.Errorf("order %s has no lines", order.ID)
		}
		var subtotal float64
		for _, line := range order.Items {
			if line.Quantity < 1 {
				t.Errorf("order %s line %s quantity %d", order.ID, line.Name, line.Quantity)
			}
			subtotal += line.Extension()
		}
		if order.Total != subtotal+store.Config.DeliveryFee {
			t.Errorf("order %s total %v, want %v", order.ID, order.Total, subtotal+store.Config.DeliveryFee)
		}
		if !order.Status.Valid() || !order.PaymentMethod.Valid() {
			t.Errorf("order %s has invalid status or payment method", order.ID)
		}
	}
}
