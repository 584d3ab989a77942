package server

import (
	"time"

	"github.com/Decentr-net/kudos/internal/entities"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// ReactionResponse is an authoritative post state after a reaction request.
// swagger:model
type ReactionResponse struct {
	Success  bool   `json:"success"`
	Likes    uint32 `json:"likes"`
	Dislikes uint32 `json:"dislikes"`
	// UserAction is null when user has no reaction on the post.
	UserAction *entities.ReactionKind `json:"userAction"`
	Error      string                 `json:"error,omitempty"`
	// SuspendedUntil is set when account is suspended temporarily.
	SuspendedUntil *time.Time `json:"suspendedUntil,omitempty"`
}

// NextBonus ...
// swagger:model
type NextBonus struct {
	DaysRequired  uint   `json:"daysRequired"`
	DaysRemaining uint   `json:"daysRemaining"`
	Exp           uint64 `json:"exp"`
	Points        uint64 `json:"points"`
	Label         string `json:"label"`
}

// Streak ...
// swagger:model
type Streak struct {
	ConsecutiveDays uint       `json:"consecutiveDays"`
	NextBonus       *NextBonus `json:"nextBonus"`
}

// Bonus is a granted streak bonus.
type Bonus struct {
	DaysRequired uint   `json:"daysRequired"`
	Exp          uint64 `json:"exp"`
	Points       uint64 `json:"points"`
	Label        string `json:"label"`
}

// SessionStartResponse ...
// swagger:model
type SessionStartResponse struct {
	Suppressed      bool    `json:"suppressed"`
	FirstLoginToday bool    `json:"firstLoginToday"`
	DailyGranted    bool    `json:"dailyGranted"`
	Streak          Streak  `json:"streak"`
	Bonuses         []Bonus `json:"bonuses"`
}

// AttendanceResponse is a monthly calendar.
// swagger:model
type AttendanceResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	// LoginDays are YYYY-MM-DD dates sorted ascending.
	LoginDays     []string `json:"loginDays"`
	TodayAttended bool     `json:"todayAttended"`
	Streak        Streak   `json:"streak"`
}

// Reward is a ledger record.
// swagger:model
type Reward struct {
	Kind      string    `json:"kind"`
	SubjectID string    `json:"subjectId,omitempty"`
	ActorID   string    `json:"actorId,omitempty"`
	Day       string    `json:"day"`
	Exp       uint64    `json:"exp"`
	Points    uint64    `json:"points"`
	GrantedAt time.Time `json:"grantedAt"`
}

func newReactionResponse(s *entities.ReactionState) ReactionResponse {
	out := ReactionResponse{
		Success:  true,
		Likes:    s.Likes,
		Dislikes: s.Dislikes,
	}

	if s.UserAction != entities.ReactionNone {
		v := s.UserAction
		out.UserAction = &v
	}

	return out
}

func toAPIStreak(s entities.Streak) Streak {
	out := Streak{ConsecutiveDays: s.ConsecutiveDays}

	if s.NextBonus != nil {
		out.NextBonus = &NextBonus{
			DaysRequired:  s.NextBonus.DaysRequired,
			DaysRemaining: s.NextBonus.DaysRemaining,
			Exp:           s.NextBonus.Exp,
			Points:        s.NextBonus.Points,
			Label:         s.NextBonus.Label,
		}
	}

	return out
}

func newSessionStartResponse(a *entities.Attendance) SessionStartResponse {
	out := SessionStartResponse{
		Suppressed:      a.Suppressed,
		FirstLoginToday: a.FirstLoginToday,
		DailyGranted:    a.DailyGranted,
		Streak:          toAPIStreak(a.Streak),
		Bonuses:         make([]Bonus, len(a.Bonuses)),
	}

	for i, v := range a.Bonuses {
		out.Bonuses[i] = Bonus{
			DaysRequired: v.DaysRequired,
			Exp:          v.Exp,
			Points:       v.Points,
			Label:        v.Label,
		}
	}

	return out
}

func newAttendanceResponse(c *entities.Calendar) AttendanceResponse {
	out := AttendanceResponse{
		Year:          c.Year,
		Month:         int(c.Month),
		LoginDays:     make([]string, len(c.LoginDays)),
		TodayAttended: c.TodayAttended,
		Streak:        toAPIStreak(c.Streak),
	}

	for i, v := range c.LoginDays {
		out.LoginDays[i] = entities.DayKey(v)
	}

	return out
}

func toAPIRewards(g []*entities.Grant) []Reward {
	out := make([]Reward, len(g))

	for i, v := range g {
		out[i] = Reward{
			Kind:      string(v.Kind),
			SubjectID: v.SubjectID,
			ActorID:   v.ActorID,
			Day:       entities.DayKey(v.Day),
			Exp:       v.Exp,
			Points:    v.Points,
			GrantedAt: v.GrantedAt,
		}
	}

	return out
}
