package service

import (
	"testing"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

func subscribeStateChanged(f *fixture) *[]uint64 {
	versions := &[]uint64{}
	f.bus.Subscribe(domain.EventStateChanged, "test.state-changed", func(payload any) {
		ev, ok := payload.(domain.StateChangedEvent)
		if !ok {
			return
		}
		*versions = append(*versions, ev.Version)
	})
	return versions
}

func TestVisibleMutationsPublishStateChanged(t *testing.T) {
	f := newFixture(t)
	versions := subscribeStateChanged(f)

	f.loginCustomer(t)
	if err := f.svc.AddToCart("burger-1"); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	f.svc.UpdateQuantity("burger-1", 3)
	if _, err := f.svc.PlaceOrder("12 Test Lane", domain.PaymentCashOnDelivery); err != nil {
		t.Fatalf("place order: %v", err)
	}
	f.svc.Logout()

	if len(*versions) != 5 {
		t.Fatalf("expected 5 state change events, got %d: %v", len(*versions), *versions)
	}
	for i := 1; i < len(*versions); i++ {
		if (*versions)[i] <= (*versions)[i-1] {
			t.Fatalf("versions not strictly increasing: %v", *versions)
		}
	}
	if last := (*versions)[len(*versions)-1]; last != f.svc.Version() {
		t.Errorf("last published version = %d, Version() = %d", last, f.svc.Version())
	}
}

func TestNoopsAndFailuresDoNotPublishStateChanged(t *testing.T) {
	f := newFixture(t)
	versions := subscribeStateChanged(f)

	f.svc.RemoveFromCart("burger-1")
	f.svc.UpdateQuantity("burger-1", 2)
	f.svc.Logout()
	if err := f.svc.AddToCart("no-such-item"); err != domain.ErrUnknownItem {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if _, err := f.svc.Login(custEmail, "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if len(*versions) != 0 {
		t.Fatalf("expected no state change events, got %v", *versions)
	}
}
