// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not begin tx within tx")

const foreignKeyViolation = "23503"

type pg struct {
	ext sqlx.ExtContext
}

type postDTO struct {
	ID        string    `db:"id"`
	Owner     string    `db:"owner"`
	Title     string    `db:"title"`
	Number    uint64    `db:"number"`
	BoardSlug string    `db:"board_slug"`
	Likes     uint32    `db:"likes"`
	Dislikes  uint32    `db:"dislikes"`
	CreatedAt time.Time `db:"created_at"`
}

type profileDTO struct {
	ID       string `db:"id"`
	Nickname string `db:"nickname"`
	Exp      uint64 `db:"exp"`
	Points   uint64 `db:"points"`
	Level    uint16 `db:"level"`
}

type suspensionDTO struct {
	UserID string     `db:"user_id"`
	Reason string     `db:"reason"`
	Until  *time.Time `db:"until"`
}

type grantDTO struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Kind      string         `db:"kind"`
	SubjectID sql.NullString `db:"subject_id"`
	ActorID   sql.NullString `db:"actor_id"`
	IdemKey   string         `db:"idem_key"`
	Day       time.Time      `db:"day"`
	Exp       uint64         `db:"exp"`
	Points    uint64         `db:"points"`
	GrantedAt time.Time      `db:"granted_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) inTx(ctx context.Context, f func(s pg) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, owner, title, number, board_slug, likes, dislikes, created_at
			FROM post
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Post{
		ID:        p.ID,
		Owner:     p.Owner,
		Title:     p.Title,
		Number:    p.Number,
		BoardSlug: p.BoardSlug,
		Likes:     p.Likes,
		Dislikes:  p.Dislikes,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (s pg) ListPostIDs(ctx context.Context, after string, limit uint16) ([]string, error) {
	var ids []string

	if err := sqlx.SelectContext(ctx, s.ext, &ids,
		`SELECT id FROM post WHERE id > $1 ORDER BY id LIMIT $2`, after, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return ids, nil
}

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		`SELECT id, nickname, exp, points, level FROM profile WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Profile{
		ID:       p.ID,
		Nickname: p.Nickname,
		Exp:      p.Exp,
		Points:   p.Points,
		Level:    p.Level,
	}, nil
}

func (s pg) GetSuspension(ctx context.Context, userID string) (*entities.Suspension, error) {
	var v suspensionDTO

	if err := sqlx.GetContext(ctx, s.ext, &v,
		`SELECT user_id, reason, until FROM suspension WHERE user_id = $1`, userID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Suspension{
		UserID: v.UserID,
		Reason: v.Reason,
		Until:  v.Until,
	}, nil
}

func (s pg) GetReaction(ctx context.Context, postID, userID string) (entities.ReactionKind, error) {
	var kind string

	if err := sqlx.GetContext(ctx, s.ext, &kind,
		`SELECT kind FROM reaction WHERE post_id = $1 AND user_id = $2`, postID, userID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ReactionNone, nil
		}

		return entities.ReactionNone, fmt.Errorf("failed to query: %w", err)
	}

	return entities.ReactionKind(kind), nil
}

// nolint:gocyclo
func (s pg) ApplyTransition(ctx context.Context, p *storage.TransitionParams) (*storage.Transition, error) {
	var out storage.Transition

	err := s.inTx(ctx, func(s pg) error {
		var post struct {
			Owner    string `db:"owner"`
			Likes    uint32 `db:"likes"`
			Dislikes uint32 `db:"dislikes"`
		}

		// post row lock serializes all transitions of the post
		if err := sqlx.GetContext(ctx, s.ext, &post,
			`SELECT owner, likes, dislikes FROM post WHERE id = $1 FOR UPDATE`, p.PostID,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		var current struct {
			Kind    string `db:"kind"`
			EventID string `db:"event_id"`
		}
		if err := sqlx.GetContext(ctx, s.ext, &current,
			`SELECT kind, event_id FROM reaction WHERE post_id = $1 AND user_id = $2`, p.PostID, p.UserID,
		); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to get reaction: %w", err)
		}

		if entities.ReactionKind(current.Kind) != p.From {
			return fmt.Errorf("%w: expected=%q actual=%q", storage.ErrStaleReaction, p.From, current.Kind)
		}

		out.PostOwner = post.Owner
		out.EventID = current.EventID

		if p.From == p.To {
			out.Counters = entities.Counters{Likes: post.Likes, Dislikes: post.Dislikes}
			return nil
		}

		eventID := uuid.New().String()

		switch {
		case p.To == entities.ReactionNone:
			eventID = ""
			if _, err := s.ext.ExecContext(ctx,
				`DELETE FROM reaction WHERE post_id = $1 AND user_id = $2`, p.PostID, p.UserID,
			); err != nil {
				return fmt.Errorf("failed to delete reaction: %w", err)
			}
		case p.From == entities.ReactionNone:
			if _, err := s.ext.ExecContext(ctx, `
					INSERT INTO reaction(post_id, user_id, kind, event_id, reacted_at)
					VALUES($1, $2, $3, $4, $5)
				`, p.PostID, p.UserID, string(p.To), eventID, p.At.UTC(),
			); err != nil {
				if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
					return storage.ErrNotFound
				}
				return fmt.Errorf("failed to insert reaction: %w", err)
			}
		default:
			if _, err := s.ext.ExecContext(ctx, `
					UPDATE reaction SET kind = $3, event_id = $4, reacted_at = $5
					WHERE post_id = $1 AND user_id = $2
				`, p.PostID, p.UserID, string(p.To), eventID, p.At.UTC(),
			); err != nil {
				return fmt.Errorf("failed to update reaction: %w", err)
			}
		}

		counters, clamped := entities.Counters{Likes: post.Likes, Dislikes: post.Dislikes}.Apply(
			entities.Transition(p.From, p.To),
		)
		if clamped {
			log.WithFields(logrus.Fields{
				"post":     p.PostID,
				"likes":    post.Likes,
				"dislikes": post.Dislikes,
				"from":     p.From,
				"to":       p.To,
				"drift":    true,
			}).Warn("post counter clamped at zero")
		}

		if _, err := s.ext.ExecContext(ctx,
			`UPDATE post SET likes = $2, dislikes = $3 WHERE id = $1`, p.PostID, counters.Likes, counters.Dislikes,
		); err != nil {
			return fmt.Errorf("failed to update counters: %w", err)
		}

		out.Counters = counters
		out.EventID = eventID
		out.Clamped = clamped

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (s pg) RecountPost(ctx context.Context, postID string) (*storage.Recount, error) {
	var out storage.Recount

	err := s.inTx(ctx, func(s pg) error {
		var old struct {
			Likes    uint32 `db:"likes"`
			Dislikes uint32 `db:"dislikes"`
		}

		// counts run after the lock so they include reactions committed while waiting
		if err := sqlx.GetContext(ctx, s.ext, &old, `
				SELECT likes, dislikes FROM post WHERE id = $1 FOR UPDATE
			`, postID,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		var cur struct {
			Likes    uint32 `db:"likes"`
			Dislikes uint32 `db:"dislikes"`
		}

		if err := sqlx.GetContext(ctx, s.ext, &cur, `
				SELECT
					COUNT(*) FILTER (WHERE kind = 'like') AS likes,
					COUNT(*) FILTER (WHERE kind = 'dislike') AS dislikes
				FROM reaction
				WHERE post_id = $1
			`, postID,
		); err != nil {
			return fmt.Errorf("failed to count reactions: %w", err)
		}

		if _, err := s.ext.ExecContext(ctx, `
				UPDATE post SET likes = $2, dislikes = $3 WHERE id = $1
			`, postID, cur.Likes, cur.Dislikes,
		); err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		out.Before = entities.Counters{Likes: old.Likes, Dislikes: old.Dislikes}
		out.After = entities.Counters{Likes: cur.Likes, Dislikes: cur.Dislikes}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (s pg) InsertGrant(ctx context.Context, g *entities.Grant, dailyLimit uint16) (*storage.Credit, error) {
	var out storage.Credit

	err := s.inTx(ctx, func(s pg) error {
		if _, err := s.ext.ExecContext(ctx,
			`INSERT INTO profile(id) VALUES($1) ON CONFLICT DO NOTHING`, g.UserID,
		); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		// profile row lock serializes grants of the user
		var p profileDTO
		if err := sqlx.GetContext(ctx, s.ext, &p,
			`SELECT id, nickname, exp, points, level FROM profile WHERE id = $1 FOR UPDATE`, g.UserID,
		); err != nil {
			return fmt.Errorf("failed to lock profile: %w", err)
		}

		out.Exp, out.Points, out.Level, out.PrevLevel = p.Exp, p.Points, p.Level, p.Level

		if dailyLimit > 0 {
			var count uint16
			if err := sqlx.GetContext(ctx, s.ext, &count,
				`SELECT COUNT(*) FROM reward_grant WHERE user_id = $1 AND kind = $2 AND day = $3`,
				g.UserID, string(g.Kind), entities.DayKey(g.Day),
			); err != nil {
				return fmt.Errorf("failed to count grants: %w", err)
			}

			if count >= dailyLimit {
				return nil
			}
		}

		res, err := s.ext.ExecContext(ctx, `
				INSERT INTO reward_grant(id, user_id, kind, subject_id, actor_id, idem_key, day, exp, points, granted_at)
				VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				ON CONFLICT (idem_key) DO NOTHING
			`,
			g.ID, g.UserID, string(g.Kind), nullString(g.SubjectID), nullString(g.ActorID),
			g.IdemKey, entities.DayKey(g.Day), g.Exp, g.Points, g.GrantedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert grant: %w", err)
		}

		if c, _ := res.RowsAffected(); c == 0 {
			return nil
		}

		out.Granted = true
		out.Exp += g.Exp
		out.Points += g.Points
		out.Level = entities.LevelFromExp(out.Exp)

		if _, err := s.ext.ExecContext(ctx,
			`UPDATE profile SET exp = $2, points = $3, level = $4 WHERE id = $1`,
			g.UserID, out.Exp, out.Points, out.Level,
		); err != nil {
			return fmt.Errorf("failed to credit profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (s pg) ListGrants(ctx context.Context, userID string, limit uint16) ([]*entities.Grant, error) {
	var gg []*grantDTO

	if err := sqlx.SelectContext(ctx, s.ext, &gg, `
			SELECT id, user_id, kind, subject_id, actor_id, idem_key, day, exp, points, granted_at
			FROM reward_grant
			WHERE user_id = $1
			ORDER BY granted_at DESC, id
			LIMIT $2
		`, userID, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Grant, len(gg))
	for i, v := range gg {
		out[i] = &entities.Grant{
			ID:        v.ID,
			UserID:    v.UserID,
			Kind:      entities.RewardKind(v.Kind),
			SubjectID: v.SubjectID.String,
			ActorID:   v.ActorID.String,
			IdemKey:   v.IdemKey,
			Day:       v.Day,
			Exp:       v.Exp,
			Points:    v.Points,
			GrantedAt: v.GrantedAt,
		}
	}

	return out, nil
}

func (s pg) RecordLogin(ctx context.Context, userID string, day time.Time) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`INSERT INTO login_history(user_id, login_date) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		userID, entities.DayKey(day),
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return c == 1, nil
}

func (s pg) ListLoginDays(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error) {
	var days []time.Time

	if err := sqlx.SelectContext(ctx, s.ext, &days, `
			SELECT login_date FROM login_history
			WHERE user_id = $1 AND login_date BETWEEN $2 AND $3
			ORDER BY login_date DESC
		`, userID, entities.DayKey(from), entities.DayKey(to),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for i := range days {
		days[i] = entities.DayOf(days[i], time.UTC)
	}

	return days, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
