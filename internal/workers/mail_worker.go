package workers

import (
	"context"

	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/internal/notifier"
)

// MailWorker drains a bounded queue of outbound messages and delivers them
// through the configured [notifier.Notifier]. Delivery failures are logged
// and dropped; the state change that triggered the email has already been
// committed and must not be rolled back or re-reported.
type MailWorker struct {
	queue    chan Message
	notifier notifier.Notifier
	logger   *logger.Logger
}

// NewMailWorker constructs a [MailWorker] with a queue of the given
// capacity. A non-positive capacity falls back to 64.
func NewMailWorker(n notifier.Notifier, queueSize int, log *logger.Logger) *MailWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &MailWorker{
		queue:    make(chan Message, queueSize),
		notifier: n,
		logger:   log,
	}
}

// Enqueue implements [MailQueue]. When the queue is full the message is
// dropped and the drop is logged; callers are never blocked by a slow
// provider.
func (w *MailWorker) Enqueue(msg Message) {
	select {
	case w.queue <- msg:
	default:
		w.logger.Error().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail queue full, dropping message")
	}
}

// Run implements [Worker]. It spawns the dispatch loop and returns
// immediately.
func (w *MailWorker) Run() {
	go w.dispatch()
}

// Stop closes the queue; the dispatch loop drains remaining messages and
// exits.
func (w *MailWorker) Stop() {
	close(w.queue)
}

func (w *MailWorker) dispatch() {
	for msg := range w.queue {
		if err := w.notifier.Send(context.Background(), msg.To, msg.Subject, msg.HTMLBody); err != nil {
			w.logger.Err(err).Str("to", msg.To).Str("subject", msg.Subject).Msg("email delivery failed")
			continue
		}
		w.logger.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("email delivered")
	}
}
