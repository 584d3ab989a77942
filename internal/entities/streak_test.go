package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := ParseDayKey(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestConsecutiveDays(t *testing.T) {
	days := []time.Time{day("2024-03-10"), day("2024-03-09"), day("2024-03-08"), day("2024-03-06")}

	require.EqualValues(t, 3, ConsecutiveDays(days, day("2024-03-10")))
	require.EqualValues(t, 2, ConsecutiveDays(days, day("2024-03-09")))
	require.EqualValues(t, 1, ConsecutiveDays(days, day("2024-03-06")))
	// not logged in yet today
	require.EqualValues(t, 3, ConsecutiveDays(days, day("2024-03-11")))
	require.EqualValues(t, 0, ConsecutiveDays(days, day("2024-03-12")))
	require.EqualValues(t, 0, ConsecutiveDays(nil, day("2024-03-11")))
}

func TestRunLength(t *testing.T) {
	days := []time.Time{day("2024-03-10"), day("2024-03-09"), day("2024-03-07")}

	require.EqualValues(t, 2, RunLength(days, day("2024-03-10")))
	require.EqualValues(t, 1, RunLength(days, day("2024-03-07")))
	require.EqualValues(t, 0, RunLength(days, day("2024-03-11")))
	require.EqualValues(t, 0, RunLength(nil, day("2024-03-10")))
}

func TestConsecutiveDays_Monotonic(t *testing.T) {
	var days []time.Time
	start := day("2024-02-27")

	var prev uint
	for i := 0; i < 5; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, d)

		cur := ConsecutiveDays(days, d)
		require.True(t, cur > prev)
		prev = cur
	}
	require.EqualValues(t, 5, prev)

	// one missed day
	next := start.AddDate(0, 0, 6)
	days = append(days, next)
	require.EqualValues(t, 1, ConsecutiveDays(days, next))
}

func TestCrossedTiers(t *testing.T) {
	require.Empty(t, CrossedTiers(0, 6))
	require.Empty(t, CrossedTiers(7, 7))

	tiers := CrossedTiers(6, 7)
	require.Len(t, tiers, 1)
	assert.EqualValues(t, 7, tiers[0].DaysRequired)

	tiers = CrossedTiers(0, 30)
	require.Len(t, tiers, 4)

	tiers = CrossedTiers(59, 60)
	require.Len(t, tiers, 1)
	assert.EqualValues(t, 60, tiers[0].DaysRequired)
	assert.EqualValues(t, 1000, tiers[0].Exp)
	assert.EqualValues(t, 1500, tiers[0].Points)

	require.Empty(t, CrossedTiers(30, 59))
}

func TestGetNextBonus(t *testing.T) {
	tt := []struct {
		days      uint
		required  uint
		remaining uint
	}{
		{0, 7, 7},
		{1, 7, 6},
		{7, 14, 7},
		{13, 14, 1},
		{29, 30, 1},
		{30, 60, 30},
		{45, 60, 15},
		{60, 90, 30},
	}

	for _, tc := range tt {
		b := GetNextBonus(tc.days)
		require.NotNil(t, b)
		assert.Equal(t, tc.required, b.DaysRequired, "days=%d", tc.days)
		assert.Equal(t, tc.remaining, b.DaysRemaining, "days=%d", tc.days)
	}
}

func TestLevelFromExp(t *testing.T) {
	require.EqualValues(t, 1, LevelFromExp(0))
	require.EqualValues(t, 1, LevelFromExp(99))
	require.EqualValues(t, 2, LevelFromExp(100))
	require.EqualValues(t, 2, LevelFromExp(299))
	require.EqualValues(t, 3, LevelFromExp(300))
	require.EqualValues(t, MaxLevel, LevelFromExp(1<<40))
}

func TestIdempotencyKey(t *testing.T) {
	d := day("2024-03-10")

	require.Equal(t, "daily_login/u/2024-03-10", IdempotencyKey(&GrantRequest{
		UserID: "u", Kind: RewardDailyLogin, SubjectID: "ignored",
	}, d))

	require.Equal(t, "consecutive_login_7/u/2024-03-10", IdempotencyKey(&GrantRequest{
		UserID: "u", Kind: ConsecutiveLoginKind(7),
	}, d))

	require.Equal(t, "received_like/owner/post/actor/event", IdempotencyKey(&GrantRequest{
		UserID: "owner", Kind: RewardReceivedLike, SubjectID: "post", ActorID: "actor", EventID: "event",
	}, d))
}

func TestDayOf(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	// 2024-03-09 20:00 UTC is already 2024-03-10 in Seoul
	tm := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)
	require.Equal(t, "2024-03-10", DayKey(DayOf(tm, seoul)))
	require.Equal(t, "2024-03-09", DayKey(DayOf(tm, time.UTC)))
}
