package entities

import (
	"fmt"
	"strings"
	"time"
)

// RewardKind ...
type RewardKind string

const (
	// RewardReceivedLike is granted to a post owner when the post is liked.
	RewardReceivedLike RewardKind = "received_like"
	// RewardGiveLike is granted to a user who liked somebody's post.
	RewardGiveLike RewardKind = "give_like"
	// RewardDailyLogin is granted for the first session of a day.
	RewardDailyLogin RewardKind = "daily_login"

	consecutiveLoginPrefix = "consecutive_login_"
)

// ConsecutiveLoginKind returns reward kind for a streak tier.
func ConsecutiveLoginKind(days uint) RewardKind {
	return RewardKind(fmt.Sprintf("%s%d", consecutiveLoginPrefix, days))
}

// Daily returns true for kinds which can be granted once per calendar day.
func (k RewardKind) Daily() bool {
	return k == RewardDailyLogin || strings.HasPrefix(string(k), consecutiveLoginPrefix)
}

// Reward describes amounts credited for an activity.
type Reward struct {
	Exp    uint64
	Points uint64
	// DailyLimit is a max count of grants of the kind per day, 0 means unlimited.
	DailyLimit uint16
}

// Rewards contains amounts of non-streak activities.
// nolint:gochecknoglobals
var Rewards = map[RewardKind]Reward{
	RewardReceivedLike: {Exp: 10, Points: 5, DailyLimit: 20},
	RewardGiveLike:     {Exp: 3, Points: 0, DailyLimit: 20},
	RewardDailyLogin:   {Exp: 100, Points: 50, DailyLimit: 1},
}

// GrantRequest ...
type GrantRequest struct {
	UserID    string
	Kind      RewardKind
	SubjectID string
	ActorID   string
	// EventID identifies a qualifying event of per-subject kinds, e.g. a like.
	EventID string
	Exp     uint64
	Points  uint64
	At      time.Time
}

// Grant is a ledger record.
type Grant struct {
	ID        string
	UserID    string
	Kind      RewardKind
	SubjectID string
	ActorID   string
	IdemKey   string
	Day       time.Time
	Exp       uint64
	Points    uint64
	GrantedAt time.Time
}

// IdempotencyKey returns the key which is unique per qualifying window.
// Daily kinds are scoped by day, the others by subject, actor and event.
func IdempotencyKey(r *GrantRequest, day time.Time) string {
	if r.Kind.Daily() {
		return fmt.Sprintf("%s/%s/%s", r.Kind, r.UserID, DayKey(day))
	}

	return fmt.Sprintf("%s/%s/%s/%s/%s", r.Kind, r.UserID, r.SubjectID, r.ActorID, r.EventID)
}
