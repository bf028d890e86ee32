package middlewares

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access line per request in the configured timezone.
func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	tz, err := time.LoadLocation(appConfig.Timezone)
	if err != nil {
		log.Warnf("Invalid time zone %q: %v", appConfig.Timezone, err)
		tz = time.UTC
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			log.WithFields(logrus.Fields{
				constvars.LoggingRequestIDKey: requestID,
			}).Infof("%s | %s | %s ==> %s | %s | %d",
				start.In(tz).Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, time.Since(start), rec.statusCode)
		})
	}
}
