// Package mocks provides mock implementations for testing.
package mocks

// Notifier is a mock implementation of ports.Notifier that records notices.
type Notifier struct {
	Messages []string
}

// Notify records the message.
func (m *Notifier) Notify(message string) {
	m.Messages = append(m.Messages, message)
}

// Last returns the most recent message, or an empty string if there is none.
func (m *Notifier) Last() string {
	if len(m.Messages) == 0 {
		return ""
	}
	return m.Messages[len(m.Messages)-1]
}
