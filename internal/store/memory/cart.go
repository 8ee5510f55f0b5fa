package memory

import "github.com/shadow1264/freshbite-delivery/internal/domain"

func (s *Store) FindCartLine(itemID string) *domain.CartLine {
	for i := range s.Cart {
		if s.Cart[i].ID == itemID {
			return &s.Cart[i]
		}
	}
	return nil
}

func (s *Store) AppendCartLine(line domain.CartLine) {
	s.Cart = append(s.Cart, line)
}

func (s *Store) RemoveCartLine(itemID string) bool {
	for i := range s.Cart {
		if s.Cart[i].ID == itemID {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ClearCart() {
	s.Cart = nil
}

// CartTotal is the sum of price times quantity over current lines, before
// the delivery fee.
func (s *Store) CartTotal() float64 {
	var total float64
	for _, line := range s.Cart {
		total += line.Extension()
	}
	return total
}

func (s *Store) CopyCart() []domain.CartLine {
	out := make([]domain.CartLine, len(s.Cart))
	copy(out, s.Cart)
	return out
}
