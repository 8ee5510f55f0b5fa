package service

import "github.com/shadow1264/freshbite-delivery/internal/domain"

// CartSummary is what checkout pages and the WhatsApp link generator
// read: current lines plus the totals derived from them.
type CartSummary struct {
	Lines       []domain.CartLine `json:"lines"`
	Subtotal    float64           `json:"subtotal"`
	DeliveryFee float64           `json:"delivery_fee"`
	GrandTotal  float64           `json:"grand_total"`
}

// AddToCart puts one unit of the item in the cart, incrementing the
// quantity if a line already exists. Fails with ErrUnknownItem when the
// id is not in the catalog.
func (s *Service) AddToCart(itemID string) error {
	s.mu.Lock()
	item := s.store.FindMenuItem(itemID)
	if item == nil {
		s.mu.Unlock()
		return domain.ErrUnknownItem
	}

	if line := s.store.FindCartLine(itemID); line != nil {
		line.Quantity++
	} else {
		s.store.AppendCartLine(domain.CartLine{MenuItem: *item, Quantity: 1})
	}
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("item added to cart", "item_id", itemID)
	s.publishChanged(version)
	return nil
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line. Silently does nothing if the item is not in the cart.
func (s *Service) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(itemID)
		return
	}

	s.mu.Lock()
	line := s.store.FindCartLine(itemID)
	if line == nil {
		s.mu.Unlock()
		return
	}
	line.Quantity = quantity
	version := s.store.Bump()
	s.mu.Unlock()

	s.publishChanged(version)
}

// RemoveFromCart drops the line if present; no-op otherwise.
func (s *Service) RemoveFromCart(itemID string) {
	s.mu.Lock()
	if !s.store.RemoveCartLine(itemID) {
		s.mu.Unlock()
		return
	}
	version := s.store.Bump()
	s.mu.Unlock()

	s.publishChanged(version)
}

// Cart returns the current lines and totals. The grand total includes
// the delivery fee in effect right now.
func (s *Service) Cart() CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.store.CartTotal()
	return CartSummary{
		Lines:       s.store.CopyCart(),
		Subtotal:    subtotal,
		DeliveryFee: s.store.Config.DeliveryFee,
		GrandTotal:  subtotal + s.store.Config.DeliveryFee,
	}
}
