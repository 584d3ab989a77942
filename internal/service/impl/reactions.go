package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Decentr-net/kudos/internal/dispatcher"
	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/metrics"
	"github.com/Decentr-net/kudos/internal/service"
	"github.com/Decentr-net/kudos/internal/storage"
)

const maxTransitionAttempts = 3

type reactions struct {
	s   storage.Storage
	g   service.SuspensionGuard
	d   dispatcher.Dispatcher
	now func() time.Time
}

// NewReactions creates new instance of reactions service.
func NewReactions(s storage.Storage, g service.SuspensionGuard, d dispatcher.Dispatcher) service.Reactions {
	return reactions{
		s:   s,
		g:   g,
		d:   d,
		now: time.Now,
	}
}

func (r reactions) Like(ctx context.Context, userID, postID string) (*entities.ReactionState, error) {
	return r.toggle(ctx, userID, postID, entities.ReactionLike)
}

func (r reactions) Dislike(ctx context.Context, userID, postID string) (*entities.ReactionState, error) {
	return r.toggle(ctx, userID, postID, entities.ReactionDislike)
}

func (r reactions) UserAction(ctx context.Context, userID, postID string) (entities.ReactionKind, error) {
	if userID == "" {
		return entities.ReactionNone, nil
	}

	k, err := r.s.GetReaction(ctx, postID, userID)
	if err != nil {
		return entities.ReactionNone, unavailable("failed to get reaction", err)
	}

	return k, nil
}

func (r reactions) State(ctx context.Context, userID, postID string) (*entities.ReactionState, error) {
	p, err := r.s.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
		}
		return nil, unavailable("failed to get post", err)
	}

	k, err := r.UserAction(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	return &entities.ReactionState{
		Counters:   p.Counters(),
		UserAction: k,
	}, nil
}

func (r reactions) toggle(ctx context.Context, userID, postID string, pressed entities.ReactionKind) (*entities.ReactionState, error) {
	ctx, span := tracer.Start(ctx, "Reactions.Toggle", trace.WithAttributes(
		attribute.String("post.id", postID),
		attribute.String("reaction", string(pressed)),
	))
	defer span.End()

	if userID == "" {
		return nil, service.ErrAuthRequired
	}

	if err := checkSuspension(ctx, r.g, userID); err != nil {
		return nil, err
	}

	l := log.WithFields(logrus.Fields{
		"user": userID,
		"post": postID,
	})

	for attempt := 1; ; attempt++ {
		from, err := r.s.GetReaction(ctx, postID, userID)
		if err != nil {
			return nil, unavailable("failed to get reaction", err)
		}

		to := entities.Toggle(from, pressed)

		// once issued, the transition completes even if the caller goes away
		t, err := r.s.ApplyTransition(context.WithoutCancel(ctx), &storage.TransitionParams{
			PostID: postID,
			UserID: userID,
			From:   from,
			To:     to,
			At:     r.now(),
		})

		switch {
		case err == nil:
			r.applied(l, userID, postID, from, to, t)
			return &entities.ReactionState{
				Counters:   t.Counters,
				UserAction: to,
			}, nil
		case errors.Is(err, storage.ErrStaleReaction):
			metrics.ReactionConflicts.Inc()
			l.WithField("attempt", attempt).Debug("reaction changed concurrently")
			if attempt >= maxTransitionAttempts {
				return nil, fmt.Errorf("%w: post %s", service.ErrConflict, postID)
			}
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
		default:
			span.RecordError(err)
			return nil, unavailable("failed to apply transition", err)
		}
	}
}

func (r reactions) applied(l logrus.FieldLogger, userID, postID string, from, to entities.ReactionKind, t *storage.Transition) {
	metrics.Reactions.WithLabelValues(kindLabel(from), kindLabel(to)).Inc()
	if t.Clamped {
		metrics.CounterClamped.Inc()
	}

	if to != entities.ReactionLike {
		return
	}

	l.WithField("action", "POST_LIKE").Info("user action")

	if t.PostOwner == userID {
		return
	}

	r.d.Dispatch(dispatcher.PostLiked{
		OwnerID: t.PostOwner,
		ActorID: userID,
		PostID:  postID,
		EventID: t.EventID,
		At:      r.now(),
	})
}

func kindLabel(k entities.ReactionKind) string {
	if k == entities.ReactionNone {
		return "none"
	}
	return string(k)
}
