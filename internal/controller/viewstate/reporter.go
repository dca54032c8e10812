package viewstate

import "storefront/pkg/logger"

// Messages are the user-facing texts of one operation. An empty NotFound falls back to Generic.
type Messages struct {
	NotFound string
	Generic  string
}

type Reporter struct {
	notifier notifier
	log      handlerLogger
}

func NewReporter(notifier notifier, log handlerLogger) *Reporter {
	return &Reporter{
		notifier: notifier,
		log:      log,
	}
}

func (r *Reporter) Success(msg string) {
	r.notifier.Notify(msg)
}

// Reject surfaces a local input error. It is not an operational failure and is logged at debug only.
func (r *Reporter) Reject(msg string, err error) {
	r.log.Debug("input rejected",
		logger.NewField("message", msg),
		logger.NewField("error", err),
	)
	r.notifier.Alert(msg)
}

func (r *Reporter) Fail(op string, err error, msgs Messages) Kind {
	kind := Classify(err)

	switch kind {
	case KindValidation:
		r.Reject(msgs.Generic, err)
	case KindNotFound:
		r.log.Warn("resource not found",
			logger.NewField("operation", op),
			logger.NewField("error", err),
		)
		msg := msgs.NotFound
		if msg == "" {
			msg = msgs.Generic
		}
		r.notifier.Alert(msg)
	default:
		r.log.Error("operation failed",
			logger.NewField("operation", op),
			logger.NewField("error", err),
		)
		r.notifier.Alert(msgs.Generic)
	}

	return kind
}
