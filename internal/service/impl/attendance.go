package impl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/kudos/internal/dedup"
	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/metrics"
	"github.com/Decentr-net/kudos/internal/service"
	"github.com/Decentr-net/kudos/internal/storage"
)

const releaseTimeout = time.Second

type attendance struct {
	s      storage.Storage
	l      service.Ledger
	st     service.Streaks
	dd     dedup.Store
	loc    *time.Location
	window time.Duration
}

// NewAttendance creates new instance of attendance service.
// Session starts of the same user within window are suppressed.
func NewAttendance(
	s storage.Storage,
	l service.Ledger,
	st service.Streaks,
	dd dedup.Store,
	loc *time.Location,
	window time.Duration,
) service.Attendance {
	return attendance{
		s:      s,
		l:      l,
		st:     st,
		dd:     dd,
		loc:    loc,
		window: window,
	}
}

func (a attendance) StartSession(ctx context.Context, userID string, now time.Time) (*entities.Attendance, error) {
	ctx, span := tracer.Start(ctx, "Attendance.StartSession")
	defer span.End()

	if userID == "" {
		return nil, service.ErrAuthRequired
	}

	day := entities.DayOf(now, a.loc)
	l := log.WithFields(logrus.Fields{
		"user": userID,
		"day":  entities.DayKey(day),
	})

	key := fmt.Sprintf("session-start/%s/%s", userID, entities.DayKey(day))

	fresh, err := a.dd.PutNX(ctx, key, a.window)
	if err != nil {
		l.WithError(err).Warn("failed to debounce session start")
		fresh = true
	}

	if !fresh {
		metrics.SessionStarts.WithLabelValues("suppressed").Inc()

		streak, err := a.st.ComputeStreak(ctx, userID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to compute streak: %w", err)
		}

		return &entities.Attendance{
			Suppressed: true,
			Streak:     *streak,
		}, nil
	}

	first, err := a.s.RecordLogin(ctx, userID, day)
	if err != nil {
		metrics.SessionStarts.WithLabelValues("error").Inc()
		a.release(l, key)
		return nil, unavailable("failed to record login", err)
	}

	out := &entities.Attendance{FirstLoginToday: first}

	daily := entities.Rewards[entities.RewardDailyLogin]
	if out.DailyGranted, err = a.l.Grant(ctx, &entities.GrantRequest{
		UserID: userID,
		Kind:   entities.RewardDailyLogin,
		Exp:    daily.Exp,
		Points: daily.Points,
		At:     now,
	}); err != nil {
		metrics.SessionStarts.WithLabelValues("error").Inc()
		a.release(l, key)
		return nil, fmt.Errorf("failed to grant daily login: %w", err)
	}

	streak, err := a.st.ComputeStreak(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute streak: %w", err)
	}
	out.Streak = *streak

	if streak.ConsecutiveDays > 0 {
		for _, t := range entities.CrossedTiers(streak.ConsecutiveDays-1, streak.ConsecutiveDays) {
			ok, err := a.l.Grant(ctx, &entities.GrantRequest{
				UserID: userID,
				Kind:   entities.ConsecutiveLoginKind(t.DaysRequired),
				Exp:    t.Exp,
				Points: t.Points,
				At:     now,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to grant %d days bonus: %w", t.DaysRequired, err)
			}

			if ok {
				l.WithField("days", t.DaysRequired).Info("streak bonus granted")
				out.Bonuses = append(out.Bonuses, t)
			}
		}
	}

	metrics.SessionStarts.WithLabelValues("recorded").Inc()

	return out, nil
}

// release lets a retry of a failed session start through the debounce window.
func (a attendance) release(l logrus.FieldLogger, key string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := a.dd.Release(ctx, key); err != nil {
		l.WithError(err).Warn("failed to release session start debounce")
	}
}

func (a attendance) Calendar(ctx context.Context, userID string, year int, month time.Month, now time.Time) (*entities.Calendar, error) {
	if userID == "" {
		return nil, service.ErrAuthRequired
	}

	if year < 1 || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: invalid month %d-%d", service.ErrInvalidRequest, year, month)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	days, err := a.s.ListLoginDays(ctx, userID, from, to)
	if err != nil {
		return nil, unavailable("failed to list login days", err)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	today := entities.DayOf(now, a.loc)
	attended := entities.RunLength(days, today) > 0
	if today.Before(from) || today.After(to) {
		td, err := a.s.ListLoginDays(ctx, userID, today, today)
		if err != nil {
			return nil, unavailable("failed to list login days", err)
		}
		attended = len(td) > 0
	}

	streak, err := a.st.ComputeStreak(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute streak: %w", err)
	}

	return &entities.Calendar{
		Year:          year,
		Month:         month,
		LoginDays:     days,
		TodayAttended: attended,
		Streak:        *streak,
	}, nil
}
