package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Decentr-net/kudos/internal/service"
)

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeOK(w, status, Error{Error: msg})
}

// errorStatus maps service error to http status and message which can be shown to user.
func errorStatus(err error) (int, string) {
	var suspended *service.SuspendedError

	switch {
	case errors.As(err, &suspended):
		return http.StatusForbidden, suspended.Message
	case errors.Is(err, service.ErrAuthRequired):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, "reaction was changed concurrently, try again"
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, "service is temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}

	writeError(w, status, msg)
}

func writeReactionError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).WithField("path", r.URL.Path).Error("reaction failed")
	}

	resp := ReactionResponse{Error: msg}

	var suspended *service.SuspendedError
	if errors.As(err, &suspended) {
		resp.SuspendedUntil = suspended.Until
	}

	writeOK(w, status, resp)
}
