package rate_limiter

import "storefront/pkg/logger"

type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
