// Package workers provides abstractions for managing and running
// background workers in the application, together with the mail dispatcher
// that decouples email delivery from request handling.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Message is one outbound email waiting for delivery.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// MailQueue accepts messages for asynchronous delivery. Enqueue never
// blocks the caller and never reports delivery errors back: once the
// triggering state change has been persisted, delivery failures are a
// logging concern only.
type MailQueue interface {
	Enqueue(msg Message)
}
