package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	ok := SubjectPinger("postgres", func(context.Context) error { return nil })
	failed := SubjectPinger("redis", func(context.Context) error { return errors.New("connection refused") })

	tt := []struct {
		name    string
		pingers []Pinger
		status  int
		errors  map[string]string
	}{
		{name: "healthy", pingers: []Pinger{ok}, status: http.StatusOK},
		{
			name:    "unhealthy",
			pingers: []Pinger{ok, failed},
			status:  http.StatusServiceUnavailable,
			errors:  map[string]string{"redis": "connection refused"},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Handler(time.Second, tc.pingers...)(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.status, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, "dev", resp.Version)
			if tc.errors == nil {
				require.Empty(t, resp.Errors)
			} else {
				require.Equal(t, tc.errors, resp.Errors)
			}
		})
	}
}
