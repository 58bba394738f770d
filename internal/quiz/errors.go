package quiz

import (
	"errors"
	"fmt"
)

// ErrEmptyBank is returned by Start when the bank holds no questions.
var ErrEmptyBank = errors.New("question bank is empty")

// ErrInvalidState indicates an operation was called outside the
// session state it is valid in. This is a programming error, not a
// user input error.
type ErrInvalidState struct {
	Op    string
	State State
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("%s called in session state %s", e.Op, e.State)
}

// ErrOutOfRange indicates an answer index outside the current
// question's options. The session is left untouched; the caller
// re-prompts.
type ErrOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("answer index %d out of range (question has %d options)", e.Index, e.Len)
}
