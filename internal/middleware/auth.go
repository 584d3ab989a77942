// Package middleware contains http middlewares.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/kudos/internal/service"
)

type userIDKey struct{}

// WithUserID puts authenticated user id into context.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserID returns authenticated user id or empty string for anonymous requests.
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey{}).(string)
	return v
}

// RejectFunc writes a response for a request with invalid credentials.
// err wraps service.ErrAuthRequired.
type RejectFunc func(w http.ResponseWriter, r *http.Request, err error)

// Auth parses HS256 bearer token and puts its subject into request context.
// Requests without Authorization header pass through as anonymous.
func Auth(secret []byte, reject RejectFunc) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(h, "Bearer ")
			if !ok {
				reject(w, r, fmt.Errorf("%w: invalid authorization header", service.ErrAuthRequired))
				return
			}

			var claims jwt.RegisteredClaims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				logrus.WithError(err).Debug("failed to parse token")
				reject(w, r, fmt.Errorf("%w: invalid token: %v", service.ErrAuthRequired, err))
				return
			}

			if claims.Subject == "" {
				reject(w, r, fmt.Errorf("%w: token has no subject", service.ErrAuthRequired))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}
