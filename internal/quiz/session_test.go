package quiz

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/mwerner/chakratest/internal/bank"
	"github.com/mwerner/chakratest/internal/chakra"
)

// fixedBank builds a bank of n fixed-mapping questions with seven
// options each, option i contributing 1 point to chakra i+1.
func fixedBank(t *testing.T, n int) *bank.Bank {
	t.Helper()
	answers := map[string]string{
		"a": "a", "b": "b", "c": "c", "d": "d", "e": "e", "f": "f", "g": "g",
	}
	raw := bank.RawBank{Lang: "en"}
	for i := 0; i < n; i++ {
		raw.Questions = append(raw.Questions, bank.RawQuestion{
			Prompt:   "q",
			Encoding: bank.EncodingFixed,
			Answers:  answers,
		})
	}
	b, err := bank.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return b
}

func likertBank(t *testing.T) *bank.Bank {
	t.Helper()
	weights := []int{0, 1, 2, 3}
	raw := bank.RawBank{Lang: "en"}
	for c := 1; c <= 7; c++ {
		q := bank.RawQuestion{Prompt: "q", Encoding: bank.EncodingLikert, Chakra: c}
		for i := range weights {
			w := weights[i]
			q.Options = append(q.Options, bank.RawOption{Label: "o", Weight: &w})
		}
		raw.Questions = append(raw.Questions, q)
	}
	b, err := bank.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return b
}

func TestStart_EmptyBank(t *testing.T) {
	_, err := Start(&bank.Bank{}, Options{})
	if !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("err = %v, want ErrEmptyBank", err)
	}
	if _, err := Start(nil, Options{}); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("err = %v, want ErrEmptyBank for nil bank", err)
	}
}

func TestStart_InitialState(t *testing.T) {
	s, err := Start(fixedBank(t, 3), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State() != StateInProgress {
		t.Errorf("State = %v, want InProgress", s.State())
	}
	if s.ID() == "" {
		t.Error("expected a non-empty session ID")
	}
	cur, total := s.Progress()
	if cur != 1 || total != 3 {
		t.Errorf("Progress = (%d, %d), want (1, 3)", cur, total)
	}
	for id, v := range s.Scores() {
		if v != 0 {
			t.Errorf("initial score for chakra %d = %d, want 0", id, v)
		}
	}
	if len(s.Scores()) != chakra.Count {
		t.Errorf("scores cover %d chakras, want %d", len(s.Scores()), chakra.Count)
	}
}

func TestSubmit_ScenarioFixedMapping(t *testing.T) {
	// Three fixed questions, answers 0, 0, 2: root gets 2, solar
	// plexus gets 1, everything else 0.
	s, err := Start(fixedBank(t, 3), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, idx := range []int{0, 0, 2} {
		if err := s.Submit(idx); err != nil {
			t.Fatalf("Submit(%d): %v", idx, err)
		}
	}
	if s.State() != StateCompleted {
		t.Fatalf("State = %v, want Completed", s.State())
	}
	scores := s.Scores()
	want := map[chakra.ID]int{chakra.Root: 2, chakra.SolarPlexus: 1}
	for _, c := range chakra.All() {
		if scores[c.ID] != want[c.ID] {
			t.Errorf("score[%d] = %d, want %d", c.ID, scores[c.ID], want[c.ID])
		}
	}
}

func TestSubmit_ScenarioLikert(t *testing.T) {
	// Seven likert questions, one per chakra. Full weight for the
	// root question, zero for the rest.
	s, err := Start(likertBank(t), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Submit(3); err != nil { // weight 3
		t.Fatalf("Submit: %v", err)
	}
	for i := 0; i < 6; i++ {
		if err := s.Submit(0); err != nil { // weight 0
			t.Fatalf("Submit: %v", err)
		}
	}
	scores := s.Scores()
	if scores[chakra.Root] != 3 {
		t.Errorf("root score = %d, want 3", scores[chakra.Root])
	}
	for id, v := range scores {
		if id != chakra.Root && v != 0 {
			t.Errorf("score[%d] = %d, want 0", id, v)
		}
	}
}

func TestSubmit_ScoreSumConservation(t *testing.T) {
	s, err := Start(fixedBank(t, 5), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	submitted := 0
	for _, idx := range []int{6, 3, 3, 0, 1} {
		if err := s.Submit(idx); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		submitted++ // every fixed option weighs 1
	}
	sum := 0
	for _, v := range s.Scores() {
		sum += v
	}
	if sum != submitted {
		t.Errorf("score sum = %d, want %d", sum, submitted)
	}
}

func TestSubmit_OutOfRange(t *testing.T) {
	s, err := Start(fixedBank(t, 2), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	before := s.Scores()

	// One past the last option.
	err = s.Submit(7)
	var oor *ErrOutOfRange
	if !errors.As(err, &oor) {
		t.Fatalf("err = %v, want *ErrOutOfRange", err)
	}
	if err := s.Submit(-1); !errors.As(err, &oor) {
		t.Fatalf("err = %v, want *ErrOutOfRange", err)
	}

	// Rejection leaves everything untouched.
	after := s.Scores()
	for id := range before {
		if before[id] != after[id] {
			t.Errorf("score[%d] changed on rejected submit: %d -> %d", id, before[id], after[id])
		}
	}
	if cur, _ := s.Progress(); cur != 1 {
		t.Errorf("position advanced on rejected submit: current = %d", cur)
	}
	if s.State() != StateInProgress {
		t.Errorf("state changed on rejected submit: %v", s.State())
	}
}

func TestSubmit_SingleQuestionBank(t *testing.T) {
	s, err := Start(fixedBank(t, 1), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Submit(0); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s.State() != StateCompleted {
		t.Errorf("State = %v, want Completed after one answer", s.State())
	}
}

func TestSubmit_AfterCompletion(t *testing.T) {
	s, err := Start(fixedBank(t, 1), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Submit(0); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	var inv *ErrInvalidState
	if err := s.Submit(0); !errors.As(err, &inv) {
		t.Fatalf("err = %v, want *ErrInvalidState", err)
	}
	if _, err := s.Current(); !errors.As(err, &inv) {
		t.Fatalf("Current err = %v, want *ErrInvalidState", err)
	}
}

func TestProgress_Completed(t *testing.T) {
	s, err := Start(fixedBank(t, 2), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	_ = s.Submit(0)
	if cur, total := s.Progress(); cur != 2 || total != 2 {
		t.Errorf("Progress = (%d, %d), want (2, 2)", cur, total)
	}
	_ = s.Submit(0)
	if cur, total := s.Progress(); cur != 2 || total != 2 {
		t.Errorf("Progress after completion = (%d, %d), want (2, 2)", cur, total)
	}
}

func TestStart_ShuffleIsPermutation(t *testing.T) {
	b := fixedBank(t, 10)
	for i := range b.Questions {
		b.Questions[i].Prompt = string(rune('A' + i))
	}

	s, err := Start(b, Options{Shuffle: true, Rand: rand.New(rand.NewSource(42))})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		q, err := s.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		seen[q.Prompt] = true
		if err := s.Submit(0); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if len(seen) != 10 {
		t.Errorf("shuffle dropped or duplicated questions: saw %d distinct prompts", len(seen))
	}
}

func TestStart_ShuffleDoesNotMutateBank(t *testing.T) {
	b := fixedBank(t, 10)
	for i := range b.Questions {
		b.Questions[i].Prompt = string(rune('A' + i))
	}
	_, err := Start(b, Options{Shuffle: true, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i, q := range b.Questions {
		if q.Prompt != string(rune('A'+i)) {
			t.Fatalf("bank question order mutated by Start")
		}
	}
}

func TestStart_FreshSessionsAreIndependent(t *testing.T) {
	b := fixedBank(t, 2)
	s1, _ := Start(b, Options{})
	_ = s1.Submit(0)

	s2, _ := Start(b, Options{})
	if s1.ID() == s2.ID() {
		t.Error("two sessions share an ID")
	}
	for id, v := range s2.Scores() {
		if v != 0 {
			t.Errorf("new session inherited score[%d] = %d", id, v)
		}
	}
}
