// Package dispatcher runs post-commit side effects in background.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/kudos/internal/metrics"
)

//go:generate mockgen -destination=./mock/dispatcher.go -package=mock -source=dispatcher.go

var log = logrus.WithField("package", "dispatcher")

// Event ...
type Event interface {
	Name() string
}

// Handler handles an event. Returned error is logged and dropped.
type Handler func(ctx context.Context, e Event) error

// Dispatcher enqueues events without blocking.
type Dispatcher interface {
	// Dispatch returns false if event was dropped.
	Dispatch(e Event) bool
}

// PostLiked is dispatched when a user liked someone's post.
type PostLiked struct {
	OwnerID string
	ActorID string
	PostID  string
	// EventID identifies the like, a re-like after unlike has a new one.
	EventID string
	At      time.Time
}

// Name ...
func (PostLiked) Name() string {
	return "post_liked"
}

// LevelUp is dispatched when user reached a new level.
type LevelUp struct {
	UserID string
	Level  uint16
}

// Name ...
func (LevelUp) Name() string {
	return "level_up"
}

// Queue is a bounded in-memory queue handled by a pool of workers.
type Queue struct {
	ch      chan Event
	workers int
	timeout time.Duration
}

// New creates new instance of Queue.
func New(size, workers int, timeout time.Duration) *Queue {
	if workers < 1 {
		workers = 1
	}

	return &Queue{
		ch:      make(chan Event, size),
		workers: workers,
		timeout: timeout,
	}
}

// Dispatch ...
func (q *Queue) Dispatch(e Event) bool {
	select {
	case q.ch <- e:
		return true
	default:
		metrics.DispatchDropped.WithLabelValues(e.Name()).Inc()
		log.WithField("event", e.Name()).Error("dispatch queue is full, event dropped")
		return false
	}
}

// Run handles events until ctx is done. Events left in the queue are dropped.
func (q *Queue) Run(ctx context.Context, h Handler) error {
	gr, ctx := errgroup.WithContext(ctx)

	for i := 0; i < q.workers; i++ {
		gr.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case e := <-q.ch:
					q.handle(h, e)
				}
			}
		})
	}

	err := gr.Wait()

	if n := len(q.ch); n > 0 {
		log.WithField("count", n).Warn("dispatcher stopped with unhandled events")
	}

	return err
}

func (q *Queue) handle(h Handler, e Event) {
	// side effects must not be bound to the request that produced them
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	l := log.WithField("event", e.Name())

	defer func() {
		if r := recover(); r != nil {
			metrics.SideEffectFailures.WithLabelValues(e.Name()).Inc()
			l.WithField("panic", fmt.Sprint(r)).Error("event handler panicked")
		}
	}()

	if err := h(ctx, e); err != nil {
		metrics.SideEffectFailures.WithLabelValues(e.Name()).Inc()
		l.WithError(err).Error("failed to handle event")
		return
	}

	l.Debug("event handled")
}
