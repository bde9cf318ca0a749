package embassy

import "context"

// NoopNotifier is a no-operation implementation of Notifier.
// Useful when no mail transport is configured or for testing.
type NoopNotifier struct{}

// NewNoopNotifier creates a new no-operation notifier.
func NewNoopNotifier() Notifier {
	return &NoopNotifier{}
}

// Notify does nothing and returns nil.
func (n *NoopNotifier) Notify(ctx context.Context, to, subject, body string) error {
	return nil
}
