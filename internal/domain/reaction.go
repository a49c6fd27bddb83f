package domain

import (
	"time"
)

// Reaction is the single like-or-dislike a device has cast on a news item.
// Device identity is an anonymous cookie token, not a user account, so this
// is a one-vote-per-browser heuristic rather than a security control.
type Reaction struct {
	Device    DeviceId
	News      NewsId
	Kind      string
	CreatedAt time.Time
}
