package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/kudos/internal/entities"
	mm "github.com/Decentr-net/kudos/internal/middleware"
)

const maxRewardsLimit = 500

func (s server) like(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Reactions Like
	//
	// Toggles like on the post. An existing dislike is replaced, an existing like is removed.
	//
	// ---
	// security:
	// - bearer: []
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Post state after toggle
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"
	//   '401':
	//     description: authentication required
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"
	//   '403':
	//     description: account is suspended
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"
	//   '409':
	//     description: reaction was changed concurrently
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"
	//   '503':
	//     description: storage is unavailable
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"

	s.toggle(w, r, s.Reactions.Like)
}

func (s server) dislike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/dislike Reactions Dislike
	//
	// Toggles dislike on the post. An existing like is replaced, an existing dislike is removed.
	//
	// ---
	// security:
	// - bearer: []
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Post state after toggle
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"
	//   default:
	//     description: error, see like
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"

	s.toggle(w, r, s.Reactions.Dislike)
}

type toggleFunc func(ctx context.Context, userID, postID string) (*entities.ReactionState, error)

func (s server) toggle(w http.ResponseWriter, r *http.Request, f toggleFunc) {
	st, err := f(r.Context(), mm.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeReactionError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newReactionResponse(st))
}

func (s server) getAction(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/action Reactions GetAction
	//
	// Returns post counters and reaction of the requester. userAction is null for anonymous requests.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Post state
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/ReactionResponse"

	st, err := s.Reactions.State(r.Context(), mm.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeReactionError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newReactionResponse(st))
}

func (s server) startSession(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /sessions/start Attendance StartSession
	//
	// Records session start. The first session of a day grants daily login reward and streak bonuses.
	// Repeated calls within a short window are suppressed.
	//
	// ---
	// security:
	// - bearer: []
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Attendance result
	//     schema:
	//       "$ref": "#/definitions/SessionStartResponse"
	//   '401':
	//     description: authentication required
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '503':
	//     description: storage is unavailable
	//     schema:
	//       "$ref": "#/definitions/Error"

	a, err := s.Attendance.StartSession(r.Context(), mm.UserID(r.Context()), s.now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newSessionStartResponse(a))
}

func (s server) getAttendance(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /attendance Attendance GetAttendance
	//
	// Returns monthly attendance calendar of the requester.
	//
	// ---
	// security:
	// - bearer: []
	// produces:
	// - application/json
	// parameters:
	// - name: year
	//   in: query
	//   required: false
	//   description: defaults to the current year
	//   example: 2024
	// - name: month
	//   in: query
	//   required: false
	//   description: defaults to the current month
	//   minimum: 1
	//   maximum: 12
	// responses:
	//   '200':
	//     description: Calendar
	//     schema:
	//       "$ref": "#/definitions/AttendanceResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: authentication required
	//     schema:
	//       "$ref": "#/definitions/Error"

	now := s.now()
	year, month, _ := now.In(s.loc).Date()

	if v := r.URL.Query().Get("year"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = i
	}

	if v := r.URL.Query().Get("month"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 1 || i > 12 {
			writeError(w, http.StatusBadRequest, "invalid month")
			return
		}
		month = time.Month(i)
	}

	c, err := s.Attendance.Calendar(r.Context(), mm.UserID(r.Context()), year, month, now)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newAttendanceResponse(c))
}

func (s server) getStreak(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/streak Attendance GetStreak
	//
	// Returns consecutive login days of the user and the next bonus.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Streak
	//     schema:
	//       "$ref": "#/definitions/Streak"
	//   '503':
	//     description: storage is unavailable
	//     schema:
	//       "$ref": "#/definitions/Error"

	st, err := s.Streaks.ComputeStreak(r.Context(), chi.URLParam(r, "id"), s.now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIStreak(*st))
}

func (s server) listRewards(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /rewards Rewards ListRewards
	//
	// Returns the latest rewards of the requester.
	//
	// ---
	// security:
	// - bearer: []
	// produces:
	// - application/json
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 50
	//   minimum: 1
	//   maximum: 500
	// responses:
	//   '200':
	//     description: Rewards
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Reward"
	//   '401':
	//     description: authentication required
	//     schema:
	//       "$ref": "#/definitions/Error"

	var limit uint16
	if v := r.URL.Query().Get("limit"); v != "" {
		i, err := strconv.ParseUint(v, 10, 16)
		if err != nil || i == 0 || i > maxRewardsLimit {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = uint16(i)
	}

	g, err := s.Ledger.History(r.Context(), mm.UserID(r.Context()), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIRewards(g))
}
