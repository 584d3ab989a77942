package impl

import (
	"context"
	"time"

	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/service"
	"github.com/Decentr-net/kudos/internal/storage"
)

// streakWindow is a count of days fetched at once while scanning login history backward.
const streakWindow = 60

type streaks struct {
	s   storage.Storage
	loc *time.Location
}

// NewStreaks creates new instance of streak tracker.
func NewStreaks(s storage.Storage, loc *time.Location) service.Streaks {
	return streaks{
		s:   s,
		loc: loc,
	}
}

func (s streaks) ComputeStreak(ctx context.Context, userID string, asOf time.Time) (*entities.Streak, error) {
	to := entities.DayOf(asOf, s.loc)

	var total uint
	for first := true; ; first = false {
		from := to.AddDate(0, 0, -(streakWindow - 1))

		days, err := s.s.ListLoginDays(ctx, userID, from, to)
		if err != nil {
			return nil, unavailable("failed to list login days", err)
		}

		n := entities.RunLength(days, to)
		if first && n == 0 {
			// no login yet today, yesterday's streak is still alive
			to = entities.PrevDay(to)
			n = entities.RunLength(days, to)
		}
		total += n

		if !to.AddDate(0, 0, -int(n)).Before(from) {
			return entities.NewStreak(total), nil
		}

		to = entities.PrevDay(from)
	}
}
