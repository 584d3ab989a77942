// Package entities contains main entities of service.
package entities

import (
	"time"
)

// ReactionKind is a user's stance on a post.
type ReactionKind string

const (
	// ReactionNone means there is no reaction row.
	ReactionNone ReactionKind = ""
	// ReactionLike ...
	ReactionLike ReactionKind = "like"
	// ReactionDislike ...
	ReactionDislike ReactionKind = "dislike"
)

// Valid ...
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionNone, ReactionLike, ReactionDislike:
		return true
	default:
		return false
	}
}

// Post ...
type Post struct {
	ID        string
	Owner     string
	Title     string
	Number    uint64
	BoardSlug string
	Likes     uint32
	Dislikes  uint32
	CreatedAt time.Time
}

// Counters returns post's reaction counters.
func (p Post) Counters() Counters {
	return Counters{Likes: p.Likes, Dislikes: p.Dislikes}
}

// ReactionState is the authoritative state returned after a toggle.
type ReactionState struct {
	Counters
	UserAction ReactionKind
}

// Profile ...
type Profile struct {
	ID       string
	Nickname string
	Exp      uint64
	Points   uint64
	Level    uint16
}

// Suspension ...
type Suspension struct {
	UserID string
	Reason string
	// Until is nil for permanent suspensions.
	Until *time.Time
}

// Active returns true if suspension is still in effect at t.
func (s *Suspension) Active(t time.Time) bool {
	if s == nil {
		return false
	}

	return s.Until == nil || t.Before(*s.Until)
}

// PostLikedNotification is sent to a post owner when somebody likes the post.
type PostLikedNotification struct {
	PostOwnerID   string `json:"post_owner_id"`
	ActorID       string `json:"actor_id"`
	ActorNickname string `json:"actor_nickname"`
	PostID        string `json:"post_id"`
	PostTitle     string `json:"post_title"`
	PostNumber    uint64 `json:"post_number"`
	BoardSlug     string `json:"board_slug"`
}

// LevelUpNotification is sent when grant moves a user to a new level.
type LevelUpNotification struct {
	UserID string `json:"user_id"`
	Level  uint16 `json:"level"`
}
