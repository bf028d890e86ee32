package middlewares

import (
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/utils"
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

// RequireWebhookSecret rejects requests whose x-sanity-secret header does not match the configured secret.
// An unset secret rejects everything.
func (m *Middlewares) RequireWebhookSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := m.InternalConfig.Webhook.Secret
		provided := r.Header.Get(constvars.HeaderXSanitySecret)

		if expected == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			utils.LogSecurityEvent(m.Log, "invalid_webhook_secret", utils.GetRequestID(r.Context()), "medium",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Bool("secret_present", provided != ""),
			)
			m.rejectWebhook(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) rejectWebhook(w http.ResponseWriter, r *http.Request) {
	if m.AccessLog != nil {
		m.AccessLog.Warnf("Rejected webhook from %s: %s", r.RemoteAddr, constvars.ErrClientInvalidWebhookSecret)
	}
	err := exceptions.ErrInvalidWebhookSecret(nil)
	utils.BuildTextResponse(w, err.StatusCode, err.ClientMessage)
}
