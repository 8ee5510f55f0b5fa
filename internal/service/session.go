package service

import "github.com/shadow1264/freshbite-delivery/internal/domain"

// Navigate switches the storefront to the named page.
func (s *Service) Navigate(page string) error {
	s.mu.Lock()
	if page == "" {
		s.mu.Unlock()
		return domain.Invalid("page", "must not be empty")
	}
	s.store.Session.Page = page
	version := s.store.Bump()
	s.mu.Unlock()

	s.publishChanged(version)
	return nil
}

// SelectCategory sets the catalog filter. An empty category clears it.
func (s *Service) SelectCategory(category domain.Category) error {
	s.mu.Lock()
	if category != "" && !category.Valid() {
		s.mu.Unlock()
		return domain.Invalid("category", "unknown category")
	}
	s.store.Session.SelectedCategory = category
	version := s.store.Bump()
	s.mu.Unlock()

	s.publishChanged(version)
	return nil
}

// SwitchAdminTab changes the active admin console tab.
func (s *Service) SwitchAdminTab(tab string) error {
	s.mu.Lock()
	if tab == "" {
		s.mu.Unlock()
		return domain.Invalid("tab", "must not be empty")
	}
	s.store.Session.AdminTab = tab
	version := s.store.Bump()
	s.mu.Unlock()

	s.publishChanged(version)
	return nil
}

// Session returns the current session with the authenticated user
// resolved to a value copy, or nil identity when anonymous.
func (s *Service) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := domain.Session{
		Page:             s.store.Session.Page,
		SelectedCategory: s.store.Session.SelectedCategory,
		AdminTab:         s.store.Session.AdminTab,
	}
	if user := s.currentUser(); user != nil {
		snapshot := *user
		view.CurrentUser = &snapshot
	}
	return view
}

// Users returns every registered user. Admin only.
func (s *Service) Users() ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.store.CopyUsers(), nil
}

// OnlineUsers returns the presence projection. Admin only.
func (s *Service) OnlineUsers() ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.store.CopyOnlineUsers(), nil
}
