package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tt := []struct {
		from, to ReactionKind
		delta    Delta
	}{
		{ReactionNone, ReactionLike, Delta{1, 0}},
		{ReactionNone, ReactionDislike, Delta{0, 1}},
		{ReactionLike, ReactionNone, Delta{-1, 0}},
		{ReactionDislike, ReactionNone, Delta{0, -1}},
		{ReactionLike, ReactionDislike, Delta{-1, 1}},
		{ReactionDislike, ReactionLike, Delta{1, -1}},
		{ReactionLike, ReactionLike, Delta{}},
		{ReactionDislike, ReactionDislike, Delta{}},
		{ReactionNone, ReactionNone, Delta{}},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			require.Equal(t, tc.delta, Transition(tc.from, tc.to))
		})
	}
}

func TestCounters_Apply(t *testing.T) {
	c, clamped := Counters{Likes: 1, Dislikes: 0}.Apply(Delta{Likes: -1, Dislikes: 1})
	require.False(t, clamped)
	require.Equal(t, Counters{Likes: 0, Dislikes: 1}, c)

	c, clamped = Counters{}.Apply(Delta{Likes: -1})
	require.True(t, clamped)
	require.Equal(t, Counters{}, c)

	c, clamped = Counters{Likes: 0, Dislikes: 5}.Apply(Delta{Likes: 1, Dislikes: -1})
	require.False(t, clamped)
	require.Equal(t, Counters{Likes: 1, Dislikes: 4}, c)
}

func TestToggle(t *testing.T) {
	require.Equal(t, ReactionLike, Toggle(ReactionNone, ReactionLike))
	require.Equal(t, ReactionNone, Toggle(ReactionLike, ReactionLike))
	require.Equal(t, ReactionLike, Toggle(ReactionDislike, ReactionLike))
	require.Equal(t, ReactionDislike, Toggle(ReactionLike, ReactionDislike))
	require.Equal(t, ReactionNone, Toggle(ReactionDislike, ReactionDislike))
}

// Applying toggles one by one must keep exactly one stored kind and conserve counters.
func TestToggle_Sequence(t *testing.T) {
	seq := []ReactionKind{
		ReactionLike, ReactionDislike, ReactionDislike, ReactionLike, ReactionLike,
		ReactionLike, ReactionDislike, ReactionLike,
	}

	start := Counters{Likes: 10, Dislikes: 3}
	c, state := start, ReactionNone
	sum := Delta{}

	for _, pressed := range seq {
		to := Toggle(state, pressed)
		d := Transition(state, to)
		sum.Likes += d.Likes
		sum.Dislikes += d.Dislikes

		var clamped bool
		c, clamped = c.Apply(d)
		require.False(t, clamped)
		state = to

		require.True(t, state.Valid())
	}

	require.Equal(t, ReactionLike, state)
	require.EqualValues(t, int(start.Likes)+sum.Likes, c.Likes)
	require.EqualValues(t, int(start.Dislikes)+sum.Dislikes, c.Dislikes)
	require.Equal(t, Counters{Likes: 11, Dislikes: 3}, c)
}

func TestReactionKind_Valid(t *testing.T) {
	require.True(t, ReactionNone.Valid())
	require.True(t, ReactionLike.Valid())
	require.True(t, ReactionDislike.Valid())
	require.False(t, ReactionKind("love").Valid())
}
