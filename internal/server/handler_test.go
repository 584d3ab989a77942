package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/kudos/internal/entities"
	"github.com/Decentr-net/kudos/internal/service"
	"github.com/Decentr-net/kudos/internal/service/mock"
)

var (
	testSecret = []byte("secret")
	testNow    = time.Date(2024, 3, 7, 3, 0, 0, 0, time.UTC)
)

type mocks struct {
	reactions  *mock.MockReactions
	ledger     *mock.MockLedger
	streaks    *mock.MockStreaks
	attendance *mock.MockAttendance
}

func newTestRouter(t *testing.T) (chi.Router, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		reactions:  mock.NewMockReactions(ctrl),
		ledger:     mock.NewMockLedger(ctrl),
		streaks:    mock.NewMockStreaks(ctrl),
		attendance: mock.NewMockAttendance(ctrl),
	}

	r := chi.NewRouter()
	SetupRouter(Services{
		Reactions:  m.reactions,
		Ledger:     m.ledger,
		Streaks:    m.streaks,
		Attendance: m.attendance,
	}, r, testSecret, nil, time.UTC, time.Minute)

	return r, m
}

func newRequest(t *testing.T, method, url, user string) *http.Request {
	r := httptest.NewRequest(method, url, nil)

	if user != "" {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   user,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(testSecret)
		require.NoError(t, err)

		r.Header.Set("Authorization", "Bearer "+s)
	}

	return r
}

func Test_like(t *testing.T) {
	until := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tt := []struct {
		name string
		user string
		st   *entities.ReactionState
		err  error

		rcode int
		rdata string
	}{
		{
			name:  "liked",
			user:  "a",
			st:    &entities.ReactionState{Counters: entities.Counters{Likes: 1}, UserAction: entities.ReactionLike},
			rcode: http.StatusOK,
			rdata: `{"success":true,"likes":1,"dislikes":0,"userAction":"like"}`,
		},
		{
			name:  "unliked",
			user:  "a",
			st:    &entities.ReactionState{},
			rcode: http.StatusOK,
			rdata: `{"success":true,"likes":0,"dislikes":0,"userAction":null}`,
		},
		{
			name:  "anonymous",
			err:   service.ErrAuthRequired,
			rcode: http.StatusUnauthorized,
			rdata: `{"success":false,"likes":0,"dislikes":0,"userAction":null,"error":"authentication required"}`,
		},
		{
			name:  "suspended",
			user:  "a",
			err:   &service.SuspendedError{Message: "spam", Until: &until},
			rcode: http.StatusForbidden,
			rdata: `{"success":false,"likes":0,"dislikes":0,"userAction":null,"error":"spam","suspendedUntil":"2024-04-01T00:00:00Z"}`,
		},
		{
			name:  "not found",
			user:  "a",
			err:   service.ErrNotFound,
			rcode: http.StatusNotFound,
			rdata: `{"success":false,"likes":0,"dislikes":0,"userAction":null,"error":"post not found"}`,
		},
		{
			name:  "conflict",
			user:  "a",
			err:   service.ErrConflict,
			rcode: http.StatusConflict,
			rdata: `{"success":false,"likes":0,"dislikes":0,"userAction":null,"error":"reaction was changed concurrently, try again"}`,
		},
		{
			name:  "unavailable",
			user:  "a",
			err:   service.ErrUnavailable,
			rcode: http.StatusServiceUnavailable,
			rdata: `{"success":false,"likes":0,"dislikes":0,"userAction":null,"error":"service is temporarily unavailable"}`,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			router, m := newTestRouter(t)

			m.reactions.EXPECT().Like(gomock.Any(), tc.user, "post").Return(tc.st, tc.err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/posts/post/like", tc.user))

			assert.Equal(t, tc.rcode, w.Code)
			assert.JSONEq(t, tc.rdata, w.Body.String())
		})
	}
}

func Test_dislike(t *testing.T) {
	router, m := newTestRouter(t)

	m.reactions.EXPECT().Dislike(gomock.Any(), "a", "post").Return(&entities.ReactionState{
		Counters:   entities.Counters{Dislikes: 1},
		UserAction: entities.ReactionDislike,
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/posts/post/dislike", "a"))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"likes":0,"dislikes":1,"userAction":"dislike"}`, w.Body.String())
}

func Test_getAction(t *testing.T) {
	router, m := newTestRouter(t)

	m.reactions.EXPECT().State(gomock.Any(), "", "post").Return(&entities.ReactionState{
		Counters: entities.Counters{Likes: 5, Dislikes: 2},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/posts/post/action", ""))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"likes":5,"dislikes":2,"userAction":null}`, w.Body.String())
}

func Test_invalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	r := httptest.NewRequest(http.MethodPost, "/v1/posts/post/like", nil)
	r.Header.Set("Authorization", "Bearer invalid")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{
		"success": false,
		"likes": 0,
		"dislikes": 0,
		"userAction": null,
		"error": "authentication required"
	}`, w.Body.String())

	r = httptest.NewRequest(http.MethodPost, "/v1/sessions/start", nil)
	r.Header.Set("Authorization", "Bearer invalid")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error": "authentication required"}`, w.Body.String())
}

func Test_startSession(t *testing.T) {
	router, m := newTestRouter(t)

	m.attendance.EXPECT().StartSession(gomock.Any(), "a", gomock.Any()).Return(&entities.Attendance{
		FirstLoginToday: true,
		DailyGranted:    true,
		Streak:          *entities.NewStreak(7),
		Bonuses:         []entities.BonusTier{entities.BonusTiers[0]},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/sessions/start", "a"))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"suppressed": false,
		"firstLoginToday": true,
		"dailyGranted": true,
		"streak": {
			"consecutiveDays": 7,
			"nextBonus": {"daysRequired": 14, "daysRemaining": 7, "exp": 400, "points": 500, "label": "2 weeks streak"}
		},
		"bonuses": [{"daysRequired": 7, "exp": 200, "points": 200, "label": "1 week streak"}]
	}`, w.Body.String())
}

func Test_startSession_Anonymous(t *testing.T) {
	router, m := newTestRouter(t)

	m.attendance.EXPECT().StartSession(gomock.Any(), "", gomock.Any()).Return(nil, service.ErrAuthRequired)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/sessions/start", ""))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"authentication required"}`, w.Body.String())
}

func Test_getAttendance(t *testing.T) {
	tt := []struct {
		name  string
		query string
		year  int
		month time.Month

		rcode int
	}{
		{name: "explicit", query: "?year=2024&month=2", year: 2024, month: time.February, rcode: http.StatusOK},
		{name: "defaults", query: "", year: time.Now().UTC().Year(), month: time.Now().UTC().Month(), rcode: http.StatusOK},
		{name: "invalid month", query: "?month=13", rcode: http.StatusBadRequest},
		{name: "invalid year", query: "?year=abc", rcode: http.StatusBadRequest},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			router, m := newTestRouter(t)

			if tc.rcode == http.StatusOK {
				m.attendance.EXPECT().Calendar(gomock.Any(), "a", tc.year, tc.month, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, year int, month time.Month, _ time.Time) (*entities.Calendar, error) {
						return &entities.Calendar{
							Year:          year,
							Month:         month,
							LoginDays:     []time.Time{time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)},
							TodayAttended: true,
							Streak:        *entities.NewStreak(1),
						}, nil
					})
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/attendance"+tc.query, "a"))

			require.Equal(t, tc.rcode, w.Code)
		})
	}
}

func Test_getStreak(t *testing.T) {
	router, m := newTestRouter(t)

	m.streaks.EXPECT().ComputeStreak(gomock.Any(), "b", gomock.Any()).Return(entities.NewStreak(0), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/users/b/streak", ""))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"consecutiveDays": 0,
		"nextBonus": {"daysRequired": 7, "daysRemaining": 7, "exp": 200, "points": 200, "label": "1 week streak"}
	}`, w.Body.String())
}

func Test_listRewards(t *testing.T) {
	router, m := newTestRouter(t)

	m.ledger.EXPECT().History(gomock.Any(), "a", uint16(10)).Return([]*entities.Grant{
		{
			Kind:      entities.RewardDailyLogin,
			Day:       time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
			Exp:       100,
			Points:    50,
			GrantedAt: testNow,
		},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/rewards?limit=10", "a"))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{
		"kind": "daily_login",
		"day": "2024-03-07",
		"exp": 100,
		"points": 50,
		"grantedAt": "2024-03-07T03:00:00Z"
	}]`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/rewards?limit=0", "a"))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_cors(t *testing.T) {
	ctrl := gomock.NewController(t)

	router := chi.NewRouter()
	SetupRouter(Services{
		Reactions: mock.NewMockReactions(ctrl),
	}, router, testSecret, []string{"https://forum.example.com"}, time.UTC, time.Minute)

	tt := []struct {
		name   string
		origin string
		allow  string
	}{
		{name: "allowed", origin: "https://forum.example.com", allow: "https://forum.example.com"},
		{name: "unknown", origin: "https://evil.example.com", allow: ""},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodOptions, "/v1/posts/p/like", nil)
			r.Header.Set("Origin", tc.origin)
			r.Header.Set("Access-Control-Request-Method", http.MethodPost)
			r.Header.Set("Access-Control-Request-Headers", "Authorization")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.allow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func Test_cors_AllowAll(t *testing.T) {
	router, _ := newTestRouter(t)

	r := httptest.NewRequest(http.MethodOptions, "/v1/posts/p/like", nil)
	r.Header.Set("Origin", "https://any.example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
