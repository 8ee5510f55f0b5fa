package service

import (
	"strings"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

// DefaultItemImage is used when an admin adds an item without a picture.
const DefaultItemImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=500&h=400&fit=crop"

// MenuItemFields carries the editable fields of a menu item. An empty
// Image keeps the existing picture (or the default on creation).
type MenuItemFields struct {
	Name        string
	Category    domain.Category
	Price       float64
	Description string
	Image       string
}

func (f MenuItemFields) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return domain.Invalid("name", "must not be empty")
	}
	if !f.Category.Valid() {
		return domain.Invalid("category", "unknown category")
	}
	if f.Price < 0 {
		return domain.Invalid("price", "must not be negative")
	}
	if strings.TrimSpace(f.Description) == "" {
		return domain.Invalid("description", "must not be empty")
	}
	return nil
}

// AddMenuItem creates a catalog item with a fresh id at the front of the
// catalog. Admin only.
func (s *Service) AddMenuItem(fields MenuItemFields) (domain.MenuItem, error) {
	s.mu.Lock()
	admin, err := s.requireAdmin()
	if err != nil {
		s.mu.Unlock()
		return domain.MenuItem{}, err
	}
	if err := fields.validate(); err != nil {
		s.mu.Unlock()
		return domain.MenuItem{}, err
	}

	image := fields.Image
	if image == "" {
		image = DefaultItemImage
	}
	item := domain.MenuItem{
		ID:          s.newID(),
		Name:        strings.TrimSpace(fields.Name),
		Category:    fields.Category,
		Price:       fields.Price,
		Description: fields.Description,
		Image:       image,
	}
	s.store.PrependMenuItem(item)
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("menu item added", "item_id", item.ID, "name", item.Name, "admin_id", admin.ID)
	s.publishChanged(version)
	return item, nil
}

// EditMenuItem overwrites the item's fields in place. Cart lines and
// order snapshots hold copies and are not affected. Admin only.
func (s *Service) EditMenuItem(id string, fields MenuItemFields) (domain.MenuItem, error) {
	s.mu.Lock()
	admin, err := s.requireAdmin()
	if err != nil {
		s.mu.Unlock()
		return domain.MenuItem{}, err
	}
	item := s.store.FindMenuItem(id)
	if item == nil {
		s.mu.Unlock()
		return domain.MenuItem{}, domain.ErrUnknownItem
	}
	if err := fields.validate(); err != nil {
		s.mu.Unlock()
		return domain.MenuItem{}, err
	}

	item.Name = strings.TrimSpace(fields.Name)
	item.Category = fields.Category
	item.Price = fields.Price
	item.Description = fields.Description
	if fields.Image != "" {
		item.Image = fields.Image
	}
	updated := *item
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("menu item updated", "item_id", id, "admin_id", admin.ID)
	s.publishChanged(version)
	return updated, nil
}

// DeleteMenuItem removes the item from the catalog if present. Admin
// only. Removing an absent id is not an error.
func (s *Service) DeleteMenuItem(id string) error {
	s.mu.Lock()
	admin, err := s.requireAdmin()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if !s.store.RemoveMenuItem(id) {
		s.mu.Unlock()
		return nil
	}
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("menu item deleted", "item_id", id, "admin_id", admin.ID)
	s.publishChanged(version)
	return nil
}

// Catalog returns value copies of the menu, optionally filtered by
// category. An empty category returns everything.
func (s *Service) Catalog(category domain.Category) []domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CopyCatalog(category)
}
