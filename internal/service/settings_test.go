package service

import (
	"testing"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

func TestSaveSiteConfigValidation(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)

	err := f.svc.SaveSiteConfig(domain.SiteConfig{Name: "FreshBite", DeliveryFee: -5})
	if !domain.IsValidation(err) {
		t.Errorf("negative fee: expected validation error, got %v", err)
	}

	err = f.svc.SaveSiteConfig(domain.SiteConfig{Name: "  ", DeliveryFee: 10})
	if !domain.IsValidation(err) {
		t.Errorf("blank name: expected validation error, got %v", err)
	}
}

func TestDeliveryFeeChangeIsNotRetroactive(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)
	f.store.Config.DeliveryFee = 50

	_ = f.svc.AddToCart("burger-1")
	order, err := f.svc.PlaceOrder("12 Anywhere St", domain.PaymentCashOnDelivery)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.Total != 300+50 {
		t.Fatalf("expected total 350, got %v", order.Total)
	}

	cfg := f.svc.SiteConfig()
	cfg.DeliveryFee = 120
	if err := f.svc.SaveSiteConfig(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	// the placed order keeps its total
	if got := f.svc.Orders()[0].Total; got != 350 {
		t.Errorf("existing order total changed to %v", got)
	}

	// new totals use the new fee
	_ = f.svc.AddToCart("burger-1")
	if got := f.svc.Cart().GrandTotal; got != 300+120 {
		t.Errorf("expected grand total 420, got %v", got)
	}
}
