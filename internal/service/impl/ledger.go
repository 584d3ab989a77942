package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Decentr-net/kudos/internal/dispatcher"
	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/metrics"
	"github.com/Decentr-net/kudos/internal/service"
	"github.com/Decentr-net/kudos/internal/storage"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type ledger struct {
	s   storage.Storage
	d   dispatcher.Dispatcher
	loc *time.Location
}

// NewLedger creates new instance of reward ledger. Days are computed in loc.
func NewLedger(s storage.Storage, d dispatcher.Dispatcher, loc *time.Location) service.Ledger {
	return ledger{
		s:   s,
		d:   d,
		loc: loc,
	}
}

func (l ledger) Grant(ctx context.Context, r *entities.GrantRequest) (bool, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Grant", trace.WithAttributes(
		attribute.String("reward.kind", string(r.Kind)),
	))
	defer span.End()

	if r.UserID == "" || r.Kind == "" {
		return false, fmt.Errorf("%w: user and kind are required", service.ErrInvalidRequest)
	}

	day := entities.DayOf(r.At, l.loc)

	var limit uint16
	if v, ok := entities.Rewards[r.Kind]; ok {
		limit = v.DailyLimit
	}

	g := &entities.Grant{
		ID:        uuid.NewString(),
		UserID:    r.UserID,
		Kind:      r.Kind,
		SubjectID: r.SubjectID,
		ActorID:   r.ActorID,
		IdemKey:   entities.IdempotencyKey(r, day),
		Day:       day,
		Exp:       r.Exp,
		Points:    r.Points,
		GrantedAt: r.At,
	}

	c, err := l.s.InsertGrant(ctx, g, limit)
	if err != nil {
		metrics.Grants.WithLabelValues(string(r.Kind), metrics.GrantError).Inc()
		span.RecordError(err)
		return false, unavailable("failed to insert grant", err)
	}

	ll := log.WithFields(logrus.Fields{
		"user": r.UserID,
		"kind": r.Kind,
		"key":  g.IdemKey,
	})

	if !c.Granted {
		metrics.Grants.WithLabelValues(string(r.Kind), metrics.GrantDuplicate).Inc()
		ll.Debug("reward was not granted")
		return false, nil
	}

	metrics.Grants.WithLabelValues(string(r.Kind), metrics.GrantGranted).Inc()
	ll.WithFields(logrus.Fields{
		"exp":    c.Exp,
		"points": c.Points,
	}).Info("reward granted")

	if c.Level > c.PrevLevel {
		l.d.Dispatch(dispatcher.LevelUp{
			UserID: r.UserID,
			Level:  c.Level,
		})
	}

	return true, nil
}

func (l ledger) History(ctx context.Context, userID string, limit uint16) ([]*entities.Grant, error) {
	if userID == "" {
		return nil, service.ErrAuthRequired
	}

	switch {
	case limit == 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	out, err := l.s.ListGrants(ctx, userID, limit)
	if err != nil {
		return nil, unavailable("failed to list grants", err)
	}

	return out, nil
}
