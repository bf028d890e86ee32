package middlewares

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireWebhookSecret(t *testing.T) {
	logger := zap.NewNop()

	testSecret := "test-webhook-secret-12345"
	middlewares := &Middlewares{
		Log: logger,
		InternalConfig: &config.InternalConfig{
			Webhook: config.AppWebhook{Secret: testSecret},
		},
	}

	called := false
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	t.Run("Valid Secret", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("POST", "/webhook/sanity-content", nil)
		req.Header.Set("x-sanity-secret", testSecret)

		rr := httptest.NewRecorder()
		middlewares.RequireWebhookSecret(testHandler).ServeHTTP(rr, req)

		assert.True(t, called, "handler should run for a valid secret")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK", rr.Body.String())
	})

	cases := []struct {
		name   string
		secret string
		set    bool
	}{
		{name: "Missing Secret", set: false},
		{name: "Empty Secret", secret: "", set: true},
		{name: "Wrong Secret", secret: "wrong-secret", set: true},
		{name: "Case Sensitivity", secret: "TEST-WEBHOOK-SECRET-12345", set: true},
		{name: "Whitespace In Secret", secret: " " + testSecret + " ", set: true},
		{name: "Prefix Of Secret", secret: testSecret[:10], set: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest("POST", "/webhook/sanity-content", nil)
			if tc.set {
				req.Header.Set(constvars.HeaderXSanitySecret, tc.secret)
			}

			rr := httptest.NewRecorder()
			middlewares.RequireWebhookSecret(testHandler).ServeHTTP(rr, req)

			assert.False(t, called, "handler must not run for a rejected secret")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Invalid secret", rr.Body.String())
		})
	}
}

func TestRequireWebhookSecret_Unconfigured(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	req := httptest.NewRequest("POST", "/webhook/sanity-content", nil)
	req.Header.Set(constvars.HeaderXSanitySecret, "")

	rr := httptest.NewRecorder()
	middlewares.RequireWebhookSecret(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a configured secret")
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
