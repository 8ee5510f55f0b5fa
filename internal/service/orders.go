package service

import (
	"strings"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
	"github.com/shadow1264/freshbite-delivery/internal/store/memory"
)

// PlaceOrder checks out the current cart. The customer's name and phone
// and every cart line are copied by value into the order, so later edits
// to the user or the catalog never alter it. The order total is the cart
// total plus the delivery fee in effect at placement. On success the
// cart is emptied and the order leads the history.
func (s *Service) PlaceOrder(address string, method domain.PaymentMethod) (domain.Order, error) {
	address = strings.TrimSpace(address)

	s.mu.Lock()
	user := s.currentUser()
	if user == nil {
		s.mu.Unlock()
		return domain.Order{}, domain.ErrNotAuthenticated
	}
	if len(s.store.Cart) == 0 {
		s.mu.Unlock()
		return domain.Order{}, domain.ErrEmptyCart
	}
	if address == "" {
		s.mu.Unlock()
		return domain.Order{}, domain.Invalid("address", "must not be empty")
	}
	if !method.Valid() {
		s.mu.Unlock()
		return domain.Order{}, domain.Invalid("payment_method", "unknown payment method")
	}

	items := make([]domain.OrderLine, 0, len(s.store.Cart))
	for _, line := range s.store.Cart {
		items = append(items, domain.OrderLine{
			ItemID:      line.ID,
			Name:        line.Name,
			Category:    line.Category,
			Price:       line.Price,
			Description: line.Description,
			Image:       line.Image,
			Quantity:    line.Quantity,
		})
	}

	order := domain.Order{
		ID:            s.newID(),
		Customer:      domain.Customer{Name: user.Name, Phone: user.Phone},
		Address:       address,
		Items:         items,
		Total:         s.store.CartTotal() + s.store.Config.DeliveryFee,
		PaymentMethod: method,
		Status:        domain.OrderStatusPending,
		PlacedAt:      s.now(),
	}
	s.store.PrependOrder(order)
	s.store.ClearCart()
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("order placed",
		"order_id", order.ID,
		"customer", order.Customer.Name,
		"items", len(order.Items),
		"total", order.Total,
	)
	s.publishChanged(version)
	return memory.CopyOrder(order), nil
}

// SetOrderStatus overwrites the order's status and records an audit
// entry. Any status may follow any other; the storefront imposes no
// transition rules. Admin only.
func (s *Service) SetOrderStatus(id string, status domain.OrderStatus) error {
	s.mu.Lock()
	admin, err := s.requireAdmin()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if !status.Valid() {
		s.mu.Unlock()
		return domain.Invalid("status", "unknown order status")
	}
	order := s.store.FindOrder(id)
	if order == nil {
		s.mu.Unlock()
		return domain.ErrUnknownOrder
	}

	old := order.Status
	order.Status = status
	s.store.AppendStatusAudit(domain.OrderStatusAudit{
		OrderID:   id,
		OldStatus: old,
		NewStatus: status,
		UserID:    admin.ID,
		Timestamp: s.now(),
	})
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("order status changed", "order_id", id, "old_status", old, "new_status", status, "admin_id", admin.ID)
	s.publishChanged(version)
	return nil
}

// Orders returns the order history, newest first, as deep copies.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CopyOrders()
}

// OrderAudit returns the recorded status changes for one order. Admin
// only.
func (s *Service) OrderAudit(orderID string) ([]domain.OrderStatusAudit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	if s.store.FindOrder(orderID) == nil {
		return nil, domain.ErrUnknownOrder
	}
	return s.store.AuditsForOrder(orderID), nil
}
