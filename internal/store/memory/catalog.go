package memory

import "github.com/shadow1264/freshbite-delivery/internal/domain"

func (s *Store) FindMenuItem(id string) *domain.MenuItem {
	for i := range s.Catalog {
		if s.Catalog[i].ID == id {
			return &s.Catalog[i]
		}
	}
	return nil
}

// PrependMenuItem puts a new item at the front of the catalog, matching
// the storefront's newest-first display.
func (s *Store) PrependMenuItem(item domain.MenuItem) {
	s.Catalog = append([]domain.MenuItem{item}, s.Catalog...)
}

// RemoveMenuItem removes the item and reports whether it was present.
// Cart lines and order snapshots hold copies and are unaffected.
func (s *Store) RemoveMenuItem(id string) bool {
	for i := range s.Catalog {
		if s.Catalog[i].ID == id {
			s.Catalog = append(s.Catalog[:i], s.Catalog[i+1:]...)
			return true
		}
	}
	return false
}

// CopyCatalog returns value copies of the catalog, optionally filtered by
// category. An empty category means no filter.
func (s *Store) CopyCatalog(category domain.Category) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(s.Catalog))
	for _, item := range s.Catalog {
		if category == "" || item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
