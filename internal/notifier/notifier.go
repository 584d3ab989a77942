// Package notifier contains interface of notification delivery.
package notifier

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/kudos/internal/entities"
)

//go:generate mockgen -destination=./mock/notifier.go -package=mock -source=notifier.go

// Notifier delivers notifications to users. Delivery is fire-and-forget.
type Notifier interface {
	NotifyPostLiked(ctx context.Context, n entities.PostLikedNotification) error
	NotifyLevelUp(ctx context.Context, n entities.LevelUpNotification) error
}

type logNotifier struct {
	log logrus.FieldLogger
}

// NewLog creates notifier which only logs notifications.
// It is used when no broker is configured.
func NewLog() Notifier {
	return logNotifier{
		log: logrus.WithField("package", "notifier"),
	}
}

func (n logNotifier) NotifyPostLiked(_ context.Context, v entities.PostLikedNotification) error {
	n.log.WithFields(logrus.Fields{
		"owner": v.PostOwnerID,
		"actor": v.ActorID,
		"post":  v.PostID,
	}).Info("post liked")

	return nil
}

func (n logNotifier) NotifyLevelUp(_ context.Context, v entities.LevelUpNotification) error {
	n.log.WithFields(logrus.Fields{
		"user":  v.UserID,
		"level": v.Level,
	}).Info("level up")

	return nil
}
