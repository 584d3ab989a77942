// Package kafka is implementation of notifier interface over kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	k "github.com/segmentio/kafka-go"

	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/notifier"
)

//go:generate mockgen -destination=./mock/writer.go -package=mock -source=kafka.go

// Writer is a part of kafka.Writer used by notifier.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...k.Message) error
	Close() error
}

// Notification kinds.
const (
	KindPostLiked = "post_liked"
	KindLevelUp   = "level_up"
)

// Message is a value of kafka message.
type Message struct {
	Kind      string      `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`
	Payload   interface{} `json:"payload"`
}

type kafka struct {
	w   Writer
	now func() time.Time
}

// NewWriter creates async kafka writer to the topic.
func NewWriter(brokers []string, topic string) *k.Writer {
	return &k.Writer{
		Addr:         k.TCP(brokers...),
		Topic:        topic,
		Balancer:     &k.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: k.RequireOne,
		Async:        true,
	}
}

// New creates new instance of kafka notifier.
func New(w Writer) notifier.Notifier {
	return kafka{
		w:   w,
		now: time.Now,
	}
}

func (n kafka) NotifyPostLiked(ctx context.Context, v entities.PostLikedNotification) error {
	return n.publish(ctx, v.PostOwnerID, KindPostLiked, v)
}

func (n kafka) NotifyLevelUp(ctx context.Context, v entities.LevelUpNotification) error {
	return n.publish(ctx, v.UserID, KindLevelUp, v)
}

// publish keys messages by recipient to keep per-user order.
func (n kafka) publish(ctx context.Context, recipient, kind string, payload interface{}) error {
	b, err := json.Marshal(Message{
		Kind:      kind,
		CreatedAt: n.now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	if err := n.w.WriteMessages(ctx, k.Message{
		Key:   []byte(recipient),
		Value: b,
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", kind, err)
	}

	return nil
}
