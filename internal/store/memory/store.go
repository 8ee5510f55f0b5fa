// Package memory holds the whole application state as a single in-memory
// aggregate: users, catalog, cart, orders, notifications, session and site
// configuration. Nothing is persisted; the store lives and dies with the
// process.
//
// The store does no locking of its own. Callers serialize access through
// the operations boundary in internal/service.
package memory

import "github.com/shadow1264/freshbite-delivery/internal/domain"

// NotificationHistoryLimit bounds the broadcast history. The most recent
// entries stay inspectable.
const NotificationHistoryLimit = 50

type Store struct {
	Users         []domain.User
	Catalog       []domain.MenuItem
	Cart          []domain.CartLine
	Orders        []domain.Order
	Notifications []domain.Notification
	StatusAudits  []domain.OrderStatusAudit
	OnlineUsers   []domain.User
	Session       SessionState
	Config        domain.SiteConfig

	version uint64
}

// SessionState keeps the authenticated user by id rather than by pointer:
// the user collection's backing array may move as it grows.
type SessionState struct {
	CurrentUserID    string
	Page             string
	SelectedCategory domain.Category
	AdminTab         string
}

func New() *Store {
	return &Store{
		Session: SessionState{
			Page:     "home",
			AdminTab: "menu",
		},
		Config: domain.SiteConfig{
			Name:           "FreshBite Kitchen",
			Logo:           "🍔",
			Tagline:        "Fast, Fresh & Delivered to Your Doorstep",
			DeliveryFee:    50,
			WhatsAppNumber: "8801700000000",
		},
	}
}

// Bump marks a visible mutation and returns the new version.
func (s *Store) Bump() uint64 {
	s.version++
	return s.version
}

func (s *Store) Version() uint64 {
	return s.version
}
