package service

import (
	"strings"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

// Register creates a new customer account and signs it in. Fails with
// ErrDuplicateEmail if the address is already taken; the user collection
// is left untouched in that case.
func (s *Service) Register(name, email, phone, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	s.mu.Lock()
	if name == "" {
		s.mu.Unlock()
		return domain.User{}, domain.Invalid("name", "must not be empty")
	}
	if email == "" {
		s.mu.Unlock()
		return domain.User{}, domain.Invalid("email", "must not be empty")
	}
	if s.store.FindUserByEmail(email) != nil {
		s.mu.Unlock()
		return domain.User{}, domain.ErrDuplicateEmail
	}

	user := domain.User{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
		IsAdmin:  false,
		IsOnline: true,
		LastSeen: s.now(),
	}
	s.store.AddUser(user)
	s.store.Session.CurrentUserID = user.ID
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("user registered", "user_id", user.ID, "email", user.Email)
	s.bus.Publish(domain.EventUserOnline, presenceEvent(user))
	s.publishChanged(version)

	return user, nil
}

// Login matches email and password exactly. On success the user goes
// online, last-seen is refreshed and the session becomes authenticated.
func (s *Service) Login(email, password string) (domain.User, error) {
	s.mu.Lock()
	user := s.store.FindUserByEmail(strings.TrimSpace(email))
	if user == nil || user.Password != password {
		s.mu.Unlock()
		return domain.User{}, domain.ErrInvalidCredentials
	}

	user.IsOnline = true
	user.LastSeen = s.now()
	s.store.Session.CurrentUserID = user.ID
	snapshot := *user
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("user logged in", "user_id", snapshot.ID, "email", snapshot.Email)
	s.bus.Publish(domain.EventUserOnline, presenceEvent(snapshot))
	s.publishChanged(version)

	return snapshot, nil
}

// Logout takes the current user offline and clears the session identity.
// Page, category filter and admin tab survive. No-op when anonymous.
func (s *Service) Logout() {
	s.mu.Lock()
	user := s.currentUser()
	if user == nil {
		s.mu.Unlock()
		return
	}

	user.IsOnline = false
	user.LastSeen = s.now()
	s.store.Session.CurrentUserID = ""
	snapshot := *user
	version := s.store.Bump()
	s.mu.Unlock()

	s.logger.Infow("user logged out", "user_id", snapshot.ID)
	s.bus.Publish(domain.EventUserOffline, presenceEvent(snapshot))
	s.publishChanged(version)
}

// RefreshPresence updates the authenticated user's last-seen timestamp.
// Driven by the periodic presence worker; silently does nothing when
// anonymous. Not a visible mutation, so no re-render is triggered.
func (s *Service) RefreshPresence() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user := s.currentUser(); user != nil {
		user.LastSeen = s.now()
	}
}

func presenceEvent(u domain.User) domain.PresenceEvent {
	return domain.PresenceEvent{
		UserID:   u.ID,
		Name:     u.Name,
		Online:   u.IsOnline,
		LastSeen: u.LastSeen,
	}
}
