package memory

import "github.com/shadow1264/freshbite-delivery/internal/domain"

// PrependNotification adds the broadcast to the front of the history and
// trims the tail past NotificationHistoryLimit.
func (s *Store) PrependNotification(n domain.Notification) {
	s.Notifications = append([]domain.Notification{n}, s.Notifications...)
	if len(s.Notifications) > NotificationHistoryLimit {
		s.Notifications = s.Notifications[:NotificationHistoryLimit]
	}
}

func (s *Store) CopyNotifications(limit int) []domain.Notification {
	if limit <= 0 || limit > len(s.Notifications) {
		limit = len(s.Notifications)
	}
	out := make([]domain.Notification, limit)
	copy(out, s.Notifications[:limit])
	return out
}
