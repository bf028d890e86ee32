package middlewares

import (
	"clinic-site/internal/app/services/shared/ratelimiter"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// RateLimit limits every client to App.MaxRequests requests per second on this instance.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRateLimited(nil))
		}),
	)
}

// FormSubmissionLimit caps mail sending submissions per client across all instances.
// Limiter failures let the request through.
func (m *Middlewares) FormSubmissionLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FormLimiter == nil || r.Method != constvars.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		requestID := utils.GetRequestID(ctx)

		clientIP, err := httprate.KeyByRealIP(r)
		if err != nil {
			clientIP = r.RemoteAddr
		}

		output, err := m.FormLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      clientIP,
			LimiterGroupName:  constvars.FormLimiterGroupName,
			WindowDurationSec: constvars.FormLimiterWindowSec,
			MaxQuota:          constvars.FormLimiterMaxQuota,
		})
		if err != nil {
			m.Log.Warn("Middlewares.FormSubmissionLimit limiter unavailable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		if !output.Allowed {
			utils.LogSecurityEvent(m.Log, "form_rate_limited", requestID, "low",
				zap.String(constvars.LoggingRemoteAddrKey, clientIP),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			if output.RetryAfterSecs > 0 {
				w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(output.RetryAfterSecs))
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRateLimited(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
