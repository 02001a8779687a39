package ports

import "context"

// Decider answers yes/no questions on behalf of the user.
// It replaces direct console input so fairy logic can run without a terminal.
type Decider interface {
	// Confirm asks question and blocks until an answer is available.
	Confirm(ctx context.Context, question string) (bool, error)
}
