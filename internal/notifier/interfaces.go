// Package notifier delivers transactional email through an HTTP email
// provider and builds the confirmation/reset links embedded in message
// bodies.
package notifier

import "context"

// Notifier is the outbound email contract used by the account service.
// Implementations deliver a single HTML message to one recipient.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
