package memory

import "github.com/shadow1264/freshbite-delivery/internal/domain"

func (s *Store) FindOrder(id string) *domain.Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

// PrependOrder puts the newest order first in the history.
func (s *Store) PrependOrder(order domain.Order) {
	s.Orders = append([]domain.Order{order}, s.Orders...)
}

func (s *Store) AppendStatusAudit(audit domain.OrderStatusAudit) {
	s.StatusAudits = append(s.StatusAudits, audit)
}

func (s *Store) AuditsForOrder(orderID string) []domain.OrderStatusAudit {
	var out []domain.OrderStatusAudit
	for _, a := range s.StatusAudits {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	return out
}

// CopyOrders returns deep copies: order line slices are duplicated so the
// view layer can never alias a historical snapshot.
func (s *Store) CopyOrders() []domain.Order {
	out := make([]domain.Order, len(s.Orders))
	for i, o := range s.Orders {
		out[i] = CopyOrder(o)
	}
	return out
}

func CopyOrder(o domain.Order) domain.Order {
	items := make([]domain.OrderLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
