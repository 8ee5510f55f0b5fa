package domain

import "time"

const (
	EventUserOnline            = "user.online"
	EventUserOffline           = "user.offline"
	EventNotificationBroadcast = "notification.broadcast"
	EventStateChanged          = "state.changed"
)

// PresenceEvent is the payload for user.online / user.offline.
type PresenceEvent struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"last_seen"`
}

// StateChangedEvent tells view layers the store mutated and a re-render
// is due. Version increases monotonically per visible mutation.
type StateChangedEvent struct {
	Version uint64 `json:"version"`
}
