package mocks

import "context"

// Decider is a mock implementation of ports.Decider.
// Answers are consumed in order; once exhausted, Default is returned.
type Decider struct {
	Answers []bool
	Default bool
	Err     error

	// Call tracking
	Questions []string
}

// Confirm records the question and returns the next configured answer.
func (m *Decider) Confirm(ctx context.Context, question string) (bool, error) {
	m.Questions = append(m.Questions, question)
	if m.Err != nil {
		return false, m.Err
	}
	if len(m.Answers) == 0 {
		return m.Default, nil
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}
