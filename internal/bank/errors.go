package bank

import "fmt"

// ErrMalformedQuestion indicates bank data that cannot be normalized.
// It is fatal: a bank that fails to normalize must not start a quiz.
type ErrMalformedQuestion struct {
	Question int    // 0-based index into the raw bank
	Option   string // offending option letter, "" when the question itself is bad
	Reason   string
}

func (e *ErrMalformedQuestion) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("question %d, option %q: %s", e.Question+1, e.Option, e.Reason)
	}
	return fmt.Sprintf("question %d: %s", e.Question+1, e.Reason)
}
