package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/Decentr-net/kudos/internal/dispatcher"
	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/metrics"
	"github.com/Decentr-net/kudos/internal/notifier"
	"github.com/Decentr-net/kudos/internal/service"
	"github.com/Decentr-net/kudos/internal/storage"
)

const unknownNickname = "unknown"

// SideEffects handles dispatched events after the triggering change was committed.
type SideEffects struct {
	s storage.Storage
	l service.Ledger
	n notifier.Notifier
}

// NewSideEffects ...
func NewSideEffects(s storage.Storage, l service.Ledger, n notifier.Notifier) *SideEffects {
	return &SideEffects{
		s: s,
		l: l,
		n: n,
	}
}

// Handle is a dispatcher.Handler.
// Each effect of an event is attempted even when the previous one failed.
func (h *SideEffects) Handle(ctx context.Context, e dispatcher.Event) error {
	switch v := e.(type) {
	case dispatcher.PostLiked:
		return h.postLiked(ctx, v)
	case dispatcher.LevelUp:
		if err := h.n.NotifyLevelUp(ctx, entities.LevelUpNotification{
			UserID: v.UserID,
			Level:  v.Level,
		}); err != nil {
			return fmt.Errorf("failed to notify level up: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown event %s", e.Name())
	}
}

func (h *SideEffects) postLiked(ctx context.Context, e dispatcher.PostLiked) error {
	var errs []error

	if err := h.notifyPostLiked(ctx, e); err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		errs = append(errs, err)
	}

	received := entities.Rewards[entities.RewardReceivedLike]
	if _, err := h.l.Grant(ctx, &entities.GrantRequest{
		UserID:    e.OwnerID,
		Kind:      entities.RewardReceivedLike,
		SubjectID: e.PostID,
		ActorID:   e.ActorID,
		EventID:   e.EventID,
		Exp:       received.Exp,
		Points:    received.Points,
		At:        e.At,
	}); err != nil {
		metrics.SideEffectFailures.WithLabelValues(string(entities.RewardReceivedLike)).Inc()
		errs = append(errs, fmt.Errorf("failed to grant received like: %w", err))
	}

	give := entities.Rewards[entities.RewardGiveLike]
	if _, err := h.l.Grant(ctx, &entities.GrantRequest{
		UserID:    e.ActorID,
		Kind:      entities.RewardGiveLike,
		SubjectID: e.PostID,
		ActorID:   e.ActorID,
		EventID:   e.EventID,
		Exp:       give.Exp,
		Points:    give.Points,
		At:        e.At,
	}); err != nil {
		metrics.SideEffectFailures.WithLabelValues(string(entities.RewardGiveLike)).Inc()
		errs = append(errs, fmt.Errorf("failed to grant give like: %w", err))
	}

	return errors.Join(errs...)
}

func (h *SideEffects) notifyPostLiked(ctx context.Context, e dispatcher.PostLiked) error {
	p, err := h.s.GetPost(ctx, e.PostID)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	nickname := unknownNickname
	actor, err := h.s.GetProfile(ctx, e.ActorID)
	switch {
	case err == nil && actor.Nickname != "":
		nickname = actor.Nickname
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		log.WithError(err).WithField("user", e.ActorID).Warn("failed to get actor profile")
	}

	if err := h.n.NotifyPostLiked(ctx, entities.PostLikedNotification{
		PostOwnerID:   e.OwnerID,
		ActorID:       e.ActorID,
		ActorNickname: nickname,
		PostID:        p.ID,
		PostTitle:     p.Title,
		PostNumber:    p.Number,
		BoardSlug:     p.BoardSlug,
	}); err != nil {
		return fmt.Errorf("failed to notify post liked: %w", err)
	}

	return nil
}
