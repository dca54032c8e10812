//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=viewstate_test
package viewstate

import "storefront/pkg/logger"

type notifier interface {
	Notify(msg string)
	Alert(msg string)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
