// Package service implements the domain operations of the storefront:
// auth, cart, checkout, admin catalog/order/notification/settings
// management. Every operation runs to completion under a single mutex,
// so the store is never observed mid-mutation. Bus events are published
// after the lock is released; handlers may safely call back into the
// service's read paths.
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shadow1264/freshbite-delivery/internal/bus"
	"github.com/shadow1264/freshbite-delivery/internal/domain"
	"github.com/shadow1264/freshbite-delivery/internal/store/memory"
)

type Service struct {
	mu     sync.Mutex
	store  *memory.Store
	bus    *bus.Bus
	logger *zap.SugaredLogger

	// overridable in tests
	now   func() time.Time
	newID func() string
}

func New(store *memory.Store, eventBus *bus.Bus, logger *zap.SugaredLogger) *Service {
	s := &Service{
		store:  store,
		bus:    eventBus,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}

	// The online-users projection is recomputed after every presence
	// change, driven by the same events the view layer sees.
	eventBus.Subscribe(domain.EventUserOnline, "service.online-projection", s.onPresenceChanged)
	eventBus.Subscribe(domain.EventUserOffline, "service.online-projection", s.onPresenceChanged)

	return s
}

func (s *Service) onPresenceChanged(any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.RecomputeOnlineUsers()
}

// publishChanged tells subscribed view layers the store mutated. Called
// outside the operation lock.
func (s *Service) publishChanged(version uint64) {
	s.bus.Publish(domain.EventStateChanged, domain.StateChangedEvent{Version: version})
}

// currentUser resolves the session identity. Caller must hold the lock.
func (s *Service) currentUser() *domain.User {
	if s.store.Session.CurrentUserID == "" {
		return nil
	}
	return s.store.FindUserByID(s.store.Session.CurrentUserID)
}

// requireAdmin guards admin-only operations. Caller must hold the lock.
func (s *Service) requireAdmin() (*domain.User, error) {
	u := s.currentUser()
	if u == nil || !u.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

// Version reports the current state version, for view-layer polling.
func (s *Service) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Version()
}
