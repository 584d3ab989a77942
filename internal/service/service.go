// Package service contains interfaces for service business-logic.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/Decentr-net/kudos/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrAuthRequired returned when there is no authenticated user.
	ErrAuthRequired = errors.New("authentication required")
	// ErrSuspended is matched by SuspendedError.
	ErrSuspended = errors.New("account is suspended")
	// ErrNotFound returned when referenced post does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable returned when underlying storage failed. Nothing was changed.
	ErrUnavailable = errors.New("storage is unavailable")
	// ErrConflict returned when reaction kept changing concurrently.
	ErrConflict = errors.New("concurrent modification")
	// ErrInvalidRequest returned when arguments are malformed.
	ErrInvalidRequest = errors.New("invalid request")
)

// SuspendedError carries suspension message which can be shown to user.
type SuspendedError struct {
	Message string
	Until   *time.Time
}

func (e *SuspendedError) Error() string {
	return ErrSuspended.Error() + ": " + e.Message
}

// Is ...
func (e *SuspendedError) Is(target error) bool {
	return target == ErrSuspended
}

// Reactions is a like/dislike toggle service.
type Reactions interface {
	// Like toggles like: the second call removes it. An existing dislike is replaced.
	Like(ctx context.Context, userID, postID string) (*entities.ReactionState, error)
	// Dislike toggles dislike: the second call removes it. An existing like is replaced.
	Dislike(ctx context.Context, userID, postID string) (*entities.ReactionState, error)
	// UserAction returns NONE for anonymous users.
	UserAction(ctx context.Context, userID, postID string) (entities.ReactionKind, error)
	// State returns post counters with user's current reaction.
	State(ctx context.Context, userID, postID string) (*entities.ReactionState, error)
}

// Ledger credits rewards at most once per qualifying window.
type Ledger interface {
	// Grant returns false if the reward was already granted in the window or daily limit is reached.
	Grant(ctx context.Context, r *entities.GrantRequest) (bool, error)
	History(ctx context.Context, userID string, limit uint16) ([]*entities.Grant, error)
}

// Streaks ...
type Streaks interface {
	ComputeStreak(ctx context.Context, userID string, asOf time.Time) (*entities.Streak, error)
}

// Attendance handles session start rewards.
type Attendance interface {
	StartSession(ctx context.Context, userID string, now time.Time) (*entities.Attendance, error)
	Calendar(ctx context.Context, userID string, year int, month time.Month, now time.Time) (*entities.Calendar, error)
}

// SuspensionGuard ...
type SuspensionGuard interface {
	// CheckSuspension returns active suspension or nil.
	CheckSuspension(ctx context.Context, userID string) (*entities.Suspension, error)
}
