package middlewares

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/app/services/shared/ratelimiter"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLog      *logrus.Logger
	InternalConfig *config.InternalConfig
	// FormLimiter is nil when form submissions are not rate limited.
	FormLimiter *ratelimiter.ResourceLimiter
}

func NewMiddlewares(logger *zap.Logger, accessLog *logrus.Logger, internalConfig *config.InternalConfig, formLimiter *ratelimiter.ResourceLimiter) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AccessLog:      accessLog,
		InternalConfig: internalConfig,
		FormLimiter:    formLimiter,
	}
}
