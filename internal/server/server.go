// Package server Kudos
//
// The Kudos is a service which toggles reactions on posts and credits rewards for user activity.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
//     SecurityDefinitions:
//     bearer:
//       type: apiKey
//       name: Authorization
//       in: header
//
// swagger:meta
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	mm "github.com/Decentr-net/kudos/internal/middleware"
	"github.com/Decentr-net/kudos/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

// nolint:gochecknoglobals
var log = logrus.WithField("layer", "server").WithField("package", "server")

// Services contains business-logic used by handlers.
type Services struct {
	Reactions  service.Reactions
	Ledger     service.Ledger
	Streaks    service.Streaks
	Attendance service.Attendance
}

type server struct {
	Services

	loc *time.Location
	now func() time.Time
}

// SetupRouter setups handlers to chi router.
// Days in requests and responses are calendar days in loc.
// Empty allowedOrigins allows any origin.
func SetupRouter(s Services, r chi.Router, jwtSecret []byte, allowedOrigins []string, loc *time.Location, timeout time.Duration) {
	r.Use(
		corsHandler(allowedOrigins),
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		middleware.Recoverer,
		middleware.Timeout(timeout),
	)

	srv := server{
		Services: s,
		loc:      loc,
		now:      time.Now,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mm.Auth(jwtSecret, writeReactionError))

			r.Post("/posts/{id}/like", srv.like)
			r.Post("/posts/{id}/dislike", srv.dislike)
			r.Get("/posts/{id}/action", srv.getAction)
		})

		r.Group(func(r chi.Router) {
			r.Use(mm.Auth(jwtSecret, writeServiceError))

			r.Post("/sessions/start", srv.startSession)
			r.Get("/attendance", srv.getAttendance)
			r.Get("/users/{id}/streak", srv.getStreak)
			r.Get("/rewards", srv.listRewards)
		})
	})
}

func corsHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return cors.AllowAll().Handler
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
