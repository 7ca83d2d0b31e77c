package error_notificator

import "context"

type Notificator interface {
	// Notify reports a failed request to the operators.
	Notify(ctx context.Context, err error, details string) error
}
