package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itchan-dev/forumapi/shared/domain"
	"github.com/itchan-dev/forumapi/shared/middleware/ratelimiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("allows request within rate limit", func(t *testing.T) {
		rl := ratelimiter.New(1, 1, time.Minute)
		defer rl.Stop()
		handler := RateLimit(rl, func(r *http.Request) (string, error) { return "user1", nil })(okHandler())

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("blocks request exceeding rate limit", func(t *testing.T) {
		rl := ratelimiter.New(0.001, 1, time.Minute)
		defer rl.Stop()
		handler := RateLimit(rl, func(r *http.Request) (string, error) { return "user1", nil })(okHandler())

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"fail"`)
	})

	t.Run("identity error", func(t *testing.T) {
		rl := ratelimiter.New(1, 1, time.Minute)
		defer rl.Stop()
		handler := RateLimit(rl, func(r *http.Request) (string, error) { return "", errors.New("no identity") })(okHandler())

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetIP(t *testing.T) {
	req := httptest.NewRequest("POST", "/authentications", nil)
	req.RemoteAddr = "203.0.113.50:12345"
	req.Header.Set("X-Real-IP", "10.0.0.1")
	req.Header.Set("X-Forwarded-For", "10.0.0.2, 10.0.0.3")

	ip, err := GetIP(req)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.50", ip)

	req.RemoteAddr = "::1"
	ip, err = GetIP(req)
	require.NoError(t, err)
	assert.Equal(t, "::1", ip)

	req.RemoteAddr = "not-an-ip"
	_, err = GetIP(req)
	assert.Error(t, err)
}

func TestGetUserIDFromContext(t *testing.T) {
	req := httptest.NewRequest("POST", "/threads", nil)
	_, err := GetUserIDFromContext(req)
	assert.Error(t, err)

	req = req.WithContext(context.WithValue(req.Context(), UserClaimsKey, &domain.TokenOwner{Id: "user-123"}))
	id, err := GetUserIDFromContext(req)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}
