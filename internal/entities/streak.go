package entities

import (
	"time"
)

// BonusTier is a consecutive login bonus.
type BonusTier struct {
	DaysRequired uint
	Exp          uint64
	Points       uint64
	Label        string
}

// BonusTiers is sorted by DaysRequired.
// nolint:gochecknoglobals
var BonusTiers = []BonusTier{
	{DaysRequired: 7, Exp: 200, Points: 200, Label: "1 week streak"},
	{DaysRequired: 14, Exp: 400, Points: 500, Label: "2 weeks streak"},
	{DaysRequired: 21, Exp: 600, Points: 800, Label: "3 weeks streak"},
	{DaysRequired: 30, Exp: 1000, Points: 1500, Label: "monthly streak"},
}

// bonusCycle is a period of recurring bonus after the last tier.
const bonusCycle = 30

// NextBonus ...
type NextBonus struct {
	BonusTier
	DaysRemaining uint
}

// Streak ...
type Streak struct {
	ConsecutiveDays uint
	NextBonus       *NextBonus
}

// TierAt returns tier which is reached exactly at days.
func TierAt(days uint) (BonusTier, bool) {
	for _, v := range BonusTiers {
		if v.DaysRequired == days {
			return v, true
		}
	}

	last := BonusTiers[len(BonusTiers)-1]
	if days > last.DaysRequired && (days-last.DaysRequired)%bonusCycle == 0 {
		last.DaysRequired = days
		return last, true
	}

	return BonusTier{}, false
}

// CrossedTiers returns tiers with prev < DaysRequired <= cur.
func CrossedTiers(prev, cur uint) []BonusTier {
	var out []BonusTier

	for d := prev + 1; d <= cur; d++ {
		if t, ok := TierAt(d); ok {
			out = append(out, t)
		}
	}

	return out
}

// GetNextBonus returns the smallest tier with DaysRequired > consecutive.
func GetNextBonus(consecutive uint) *NextBonus {
	for _, v := range BonusTiers {
		if v.DaysRequired > consecutive {
			return &NextBonus{BonusTier: v, DaysRemaining: v.DaysRequired - consecutive}
		}
	}

	last := BonusTiers[len(BonusTiers)-1]
	remaining := bonusCycle - (consecutive-last.DaysRequired)%bonusCycle
	last.DaysRequired = consecutive + remaining

	return &NextBonus{BonusTier: last, DaysRemaining: remaining}
}

// RunLength counts consecutive days present in days ending at end.
// It returns 0 if end itself is missing.
func RunLength(days []time.Time, end time.Time) uint {
	set := make(map[string]struct{}, len(days))
	for _, v := range days {
		set[DayKey(v)] = struct{}{}
	}

	var n uint
	for d := end; ; d = PrevDay(d) {
		if _, ok := set[DayKey(d)]; !ok {
			return n
		}
		n++
	}
}

// ConsecutiveDays returns the streak as of asOf.
// A streak ending the day before asOf is still alive while asOf has no login yet.
func ConsecutiveDays(days []time.Time, asOf time.Time) uint {
	if n := RunLength(days, asOf); n > 0 {
		return n
	}
	return RunLength(days, PrevDay(asOf))
}

// NewStreak ...
func NewStreak(consecutive uint) *Streak {
	return &Streak{
		ConsecutiveDays: consecutive,
		NextBonus:       GetNextBonus(consecutive),
	}
}

// Attendance is a result of session start.
type Attendance struct {
	// Suppressed is true when the session start was debounced and nothing was recorded.
	Suppressed      bool
	FirstLoginToday bool
	DailyGranted    bool
	Streak          Streak
	Bonuses         []BonusTier
}

// Calendar is a monthly attendance view.
type Calendar struct {
	Year          int
	Month         time.Month
	LoginDays     []time.Time
	TodayAttended bool
	Streak        Streak
}
