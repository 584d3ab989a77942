// Package storage contains a storage interface.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Decentr-net/kudos/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrStaleReaction is returned by ApplyTransition when stored reaction differs from the expected one.
var ErrStaleReaction = errors.New("stale reaction")

// Storage provides methods for interacting with database.
type Storage interface {
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPostIDs(ctx context.Context, after string, limit uint16) ([]string, error)
	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	GetSuspension(ctx context.Context, userID string) (*entities.Suspension, error)

	GetReaction(ctx context.Context, postID, userID string) (entities.ReactionKind, error)
	// ApplyTransition atomically changes reaction row and post counters.
	ApplyTransition(ctx context.Context, p *TransitionParams) (*Transition, error)
	// RecountPost recomputes post counters from reaction rows.
	RecountPost(ctx context.Context, postID string) (*Recount, error)

	// InsertGrant appends grant to the ledger and credits profile totals.
	InsertGrant(ctx context.Context, g *entities.Grant, dailyLimit uint16) (*Credit, error)
	ListGrants(ctx context.Context, userID string, limit uint16) ([]*entities.Grant, error)

	// RecordLogin returns true if it is the first login of the day.
	RecordLogin(ctx context.Context, userID string, day time.Time) (bool, error)
	// ListLoginDays returns days in [from, to] sorted by descending.
	ListLoginDays(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error)
}

// TransitionParams ...
type TransitionParams struct {
	PostID string
	UserID string
	From   entities.ReactionKind
	To     entities.ReactionKind
	At     time.Time
}

// Transition is a result of applied transition.
type Transition struct {
	entities.Counters
	PostOwner string
	// EventID identifies the reaction row state, it is empty when the reaction was removed.
	EventID string
	// Clamped is true when a counter would have become negative.
	Clamped bool
}

// Recount ...
type Recount struct {
	Before entities.Counters
	After  entities.Counters
}

// Credit is a result of InsertGrant.
type Credit struct {
	Granted   bool
	Exp       uint64
	Points    uint64
	PrevLevel uint16
	Level     uint16
}
