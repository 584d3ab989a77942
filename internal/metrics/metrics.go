// Package metrics contains prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kudos"

// nolint:gochecknoglobals
var (
	// Reactions counts applied reaction transitions.
	Reactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reaction_transitions_total",
		Help:      "Applied reaction transitions.",
	}, []string{"from", "to"})

	// ReactionConflicts counts stale reaction retries.
	ReactionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reaction_conflicts_total",
		Help:      "Transitions rejected because reaction was changed concurrently.",
	})

	// CounterClamped counts decrements clamped at zero.
	CounterClamped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_counter_clamped_total",
		Help:      "Post counter decrements clamped at zero.",
	})

	// Grants counts ledger results by kind.
	Grants = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reward_grants_total",
		Help:      "Reward grant attempts by result.",
	}, []string{"kind", "result"})

	// SideEffectFailures counts failed dispatched events.
	SideEffectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "side_effect_failures_total",
		Help:      "Failed post-commit side effects.",
	}, []string{"effect"})

	// DispatchDropped counts events dropped because the queue was full.
	DispatchDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_dropped_total",
		Help:      "Events dropped on full dispatch queue.",
	}, []string{"event"})

	// SessionStarts counts session start signals.
	SessionStarts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_starts_total",
		Help:      "Session start signals by outcome.",
	}, []string{"outcome"})
)

// Grant results.
const (
	GrantGranted   = "granted"
	GrantDuplicate = "duplicate"
	GrantError     = "error"
)
