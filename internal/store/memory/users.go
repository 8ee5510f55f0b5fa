package memory

import (
	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

// FindUserByEmail matches the email exactly; credentials are compared
// as stored, with no case folding.
func (s *Store) FindUserByEmail(email string) *domain.User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

func (s *Store) FindUserByID(id string) *domain.User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

func (s *Store) AddUser(u domain.User) *domain.User {
	s.Users = append(s.Users, u)
	return &s.Users[len(s.Users)-1]
}

// RecomputeOnlineUsers rebuilds the online-users projection from the user
// collection. Called by the presence event handler after every presence
// change.
func (s *Store) RecomputeOnlineUsers() {
	online := s.OnlineUsers[:0]
	for _, u := range s.Users {
		if u.IsOnline {
			online = append(online, u)
		}
	}
	s.OnlineUsers = online
}

// CopyUsers returns value copies safe to hand to the view layer.
func (s *Store) CopyUsers() []domain.User {
	out := make([]domain.User, len(s.Users))
	copy(out, s.Users)
	return out
}

func (s *Store) CopyOnlineUsers() []domain.User {
	out := make([]domain.User, len(s.OnlineUsers))
	copy(out, s.OnlineUsers)
	return out
}
