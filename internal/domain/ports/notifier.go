// Package ports defines interfaces for the fairy's outside collaborators.
package ports

// Notifier receives the notices emitted by successful fairy actions.
// Implementations decide where they go (console, JSON lines, a test buffer).
type Notifier interface {
	// Notify delivers one human-readable notice.
	Notify(message string)
}
