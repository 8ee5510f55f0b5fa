package service

import (
	"strings"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

// SaveSiteConfig overwrites the site configuration. The new delivery fee
// applies to subsequent total computations only; existing orders keep
// the totals they were placed with. Admin only.
func (s *Service) SaveSiteConfig(cfg domain.SiteConfig) error {
	s.mu.Lock()
	admin, err := s.requireAdmin()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if strings.TrimSpace(cfg.Name) == "" {
		s.mu.Unlock()
		return domain.Invalid("name", "must not be empty")
	}
	if cfg.DeliveryFee < 0 {
		s.mu.Unlock()
		return domain.Invalid("delivery_fee", "must not be negative")
	}

	s.store.Config = cfg
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("site settings saved", "delivery_fee", cfg.DeliveryFee, "admin_id", admin.ID)
	s.publishChanged(version)
	return nil
}

// SiteConfig returns the current site configuration.
func (s *Service) SiteConfig() domain.SiteConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Config
}
