// Package quiz owns the mutable state of one quiz run: question
// order, current position and the accumulated per-chakra scores. A
// Session moves through NotStarted → InProgress → Completed; restart
// means creating a fresh Session, never reusing an old one.
package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mwerner/chakratest/internal/bank"
	"github.com/mwerner/chakratest/internal/chakra"
)

// State is the lifecycle state of a session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Options configures a new session.
type Options struct {
	// Shuffle applies a uniform random permutation (Fisher–Yates) to
	// the question order.
	Shuffle bool

	// Rand is the randomness source for shuffling. Nil means a
	// time-seeded source; tests inject a fixed seed.
	Rand *rand.Rand
}

// Session is one quiz run. All fields are private: every mutation
// goes through Submit, which is all-or-nothing, so scores only ever
// grow and never change after completion.
type Session struct {
	id        string
	lang      chakra.Lang
	questions []bank.Question
	index     int
	scores    map[chakra.ID]int
	state     State
}

// Start creates a session over the given bank. The question sequence
// is copied, so later mutation of the bank cannot leak into a running
// session.
func Start(b *bank.Bank, opts Options) (*Session, error) {
	if b == nil || b.Len() == 0 {
		return nil, ErrEmptyBank
	}

	questions := make([]bank.Question, b.Len())
	copy(questions, b.Questions)

	if opts.Shuffle {
		r := opts.Rand
		if r == nil {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		r.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}

	scores := make(map[chakra.ID]int, chakra.Count)
	for _, c := range chakra.All() {
		scores[c.ID] = 0
	}

	return &Session{
		id:        uuid.NewString(),
		lang:      b.Lang,
		questions: questions,
		scores:    scores,
		state:     StateInProgress,
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Lang returns the language of the bank this session runs over.
func (s *Session) Lang() chakra.Lang { return s.lang }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Current returns the question awaiting an answer.
func (s *Session) Current() (bank.Question, error) {
	if s.state != StateInProgress {
		return bank.Question{}, &ErrInvalidState{Op: "Current", State: s.state}
	}
	return s.questions[s.index], nil
}

// Submit records the answer for the current question: the selected
// option's (chakra, weight) contribution is added to the running
// scores and the session advances one question. Answering the last
// question completes the session. On error nothing changes.
func (s *Session) Submit(optionIndex int) error {
	if s.state != StateInProgress {
		return &ErrInvalidState{Op: "Submit", State: s.state}
	}

	q := s.questions[s.index]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return &ErrOutOfRange{Index: optionIndex, Len: len(q.Options)}
	}

	opt := q.Options[optionIndex]
	s.scores[opt.Chakra] += opt.Weight
	s.index++
	if s.index == len(s.questions) {
		s.state = StateCompleted
	}
	return nil
}

// Progress returns the 1-based position for progress display: the
// number of the question currently shown while in progress, or
// (total, total) once completed.
func (s *Session) Progress() (current, total int) {
	total = len(s.questions)
	if s.state == StateCompleted {
		return total, total
	}
	return s.index + 1, total
}

// Scores returns a copy of the accumulated per-chakra scores. All
// seven chakras are present, zero-scored ones included.
func (s *Session) Scores() map[chakra.ID]int {
	out := make(map[chakra.ID]int, len(s.scores))
	for id, v := range s.scores {
		out[id] = v
	}
	return out
}
