package service

import (
	"strings"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

// Broadcast creates an admin notification, prepends it to the bounded
// history and publishes it on the bus so live views can show it
// immediately. The audience tag is advisory metadata; delivery is not
// filtered here. Admin only.
func (s *Service) Broadcast(title, message string, audience domain.Audience) (domain.Notification, error) {
	s.mu.Lock()
	admin, err := s.requireAdmin()
	if err != nil {
		s.mu.Unlock()
		return domain.Notification{}, err
	}
	if strings.TrimSpace(title) == "" {
		s.mu.Unlock()
		return domain.Notification{}, domain.Invalid("title", "must not be empty")
	}
	if strings.TrimSpace(message) == "" {
		s.mu.Unlock()
		return domain.Notification{}, domain.Invalid("message", "must not be empty")
	}
	if !audience.Valid() {
		s.mu.Unlock()
		return domain.Notification{}, domain.Invalid("audience", "must be all or online")
	}

	notification := domain.Notification{
		ID:        s.newID(),
		Title:     strings.TrimSpace(title),
		Message:   message,
		Audience:  audience,
		CreatedAt: s.now(),
	}
	s.store.PrependNotification(notification)
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("notification broadcast", "notification_id", notification.ID, "audience", audience, "admin_id", admin.ID)
	s.bus.Publish(domain.EventNotificationBroadcast, notification)
	s.publishChanged(version)
	return notification, nil
}

// Notifications returns the most recent broadcasts, newest first. A
// non-positive limit returns the whole retained history.
func (s *Service) Notifications(limit int) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CopyNotifications(limit)
}
