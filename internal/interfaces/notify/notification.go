package notify

import "go.uber.org/zap"

// Notification is a toast-style message shown to the shopper.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Sink receives notifications. Implementations must be safe for
// concurrent use; the event bus dispatches from its own goroutine.
type Sink interface {
	Notify(notification Notification)
}

// ZapSink writes notifications to the application log.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a log-backed notification sink.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// Notify implements Sink.
func (s *ZapSink) Notify(notification Notification) {
	s.logger.Info("notification",
		zap.String("title", notification.Title),
		zap.String("description", notification.Description),
	)
}
