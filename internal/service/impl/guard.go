package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/service"
	"github.com/Decentr-net/kudos/internal/storage"
)

type guard struct {
	s   storage.Storage
	now func() time.Time
}

// NewSuspensionGuard creates suspension guard backed by storage.
func NewSuspensionGuard(s storage.Storage) service.SuspensionGuard {
	return guard{
		s:   s,
		now: time.Now,
	}
}

func (g guard) CheckSuspension(ctx context.Context, userID string) (*entities.Suspension, error) {
	v, err := g.s.GetSuspension(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get suspension: %w", err)
	}

	if !v.Active(g.now()) {
		return nil, nil
	}

	return v, nil
}

// checkSuspension converts active suspension into SuspendedError.
func checkSuspension(ctx context.Context, g service.SuspensionGuard, userID string) error {
	v, err := g.CheckSuspension(ctx, userID)
	if err != nil {
		return unavailable("failed to check suspension", err)
	}

	if v == nil {
		return nil
	}

	msg := v.Reason
	if msg == "" {
		msg = "your account is suspended"
	}

	return &service.SuspendedError{
		Message: msg,
		Until:   v.Until,
	}
}
