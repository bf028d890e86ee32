package middlewares

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/pkg/constvars"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	var captured string
	handler := middlewares.RequestID(constvars.REQUEST_ID_PREFIX)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.True(t, strings.HasPrefix(captured, constvars.REQUEST_ID_PREFIX))
		assert.NotContains(t, captured, "-")
		assert.Equal(t, captured, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Client Supplied", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", captured)
		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestBodyLimit(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{App: config.App{RequestBodyLimitInMegabyte: 1}},
	}

	var readErr error
	handler := middlewares.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	big := strings.Repeat("a", (1<<20)+1)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/send-email", strings.NewReader(big)))
	assert.Error(t, readErr)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/send-email", strings.NewReader("{}")))
	assert.NoError(t, readErr)
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(1, 2, time.Minute)
	now := time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/webhook/sanity-content", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, serve("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, serve("10.0.0.1:1001").Code)

	blocked := serve("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, serve("10.0.0.2:1000").Code, "other clients are unaffected")

	now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1:1003").Code, "still blocked")

	now = now.Add(31 * time.Second)
	assert.Equal(t, http.StatusOK, serve("10.0.0.1:1004").Code)
}
