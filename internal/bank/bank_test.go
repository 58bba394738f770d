package bank

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mwerner/chakratest/internal/chakra"
)

func intp(v int) *int { return &v }

func fixedQuestion() RawQuestion {
	return RawQuestion{
		Prompt:   "Pick one.",
		Encoding: EncodingFixed,
		Answers: map[string]string{
			"a": "alpha", "b": "beta", "c": "gamma", "d": "delta",
			"e": "epsilon", "f": "zeta", "g": "eta",
		},
	}
}

func TestNormalize_Fixed(t *testing.T) {
	b, err := Normalize(RawBank{Lang: "en", Questions: []RawQuestion{fixedQuestion()}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	q := b.Questions[0]
	if len(q.Options) != 7 {
		t.Fatalf("options = %d, want 7", len(q.Options))
	}
	for i, opt := range q.Options {
		if opt.Chakra != chakra.ID(i+1) {
			t.Errorf("option %d chakra = %d, want %d", i, opt.Chakra, i+1)
		}
		if opt.Weight != 1 {
			t.Errorf("option %d weight = %d, want 1", i, opt.Weight)
		}
	}
	if q.Options[0].Label != "alpha" || q.Options[6].Label != "eta" {
		t.Errorf("option labels out of order: %q ... %q", q.Options[0].Label, q.Options[6].Label)
	}
}

func TestNormalize_Fixed_SparseAnswers(t *testing.T) {
	rq := RawQuestion{
		Prompt:   "Pick one.",
		Encoding: EncodingFixed,
		Answers:  map[string]string{"b": "beta", "e": "epsilon"},
	}
	b, err := Normalize(RawBank{Lang: "en", Questions: []RawQuestion{rq}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	q := b.Questions[0]
	if len(q.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(q.Options))
	}
	if q.Options[0].Chakra != chakra.Sacral || q.Options[1].Chakra != chakra.Throat {
		t.Errorf("chakras = %d, %d, want %d, %d",
			q.Options[0].Chakra, q.Options[1].Chakra, chakra.Sacral, chakra.Throat)
	}
}

func TestNormalize_Fixed_LetterPastG(t *testing.T) {
	rq := fixedQuestion()
	rq.Answers["h"] = "theta"
	_, err := Normalize(RawBank{Lang: "en", Questions: []RawQuestion{rq}})
	var merr *ErrMalformedQuestion
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *ErrMalformedQuestion", err)
	}
	if merr.Option != "h" {
		t.Errorf("Option = %q, want %q", merr.Option, "h")
	}
}

func TestNormalize_Tagged(t *testing.T) {
	rq := RawQuestion{
		Prompt:   "Tagged.",
		Encoding: EncodingTagged,
		Options: []RawOption{
			{Label: "one", Chakra: 4},
			{Label: "two", Chakra: 4},
			{Label: "three", Chakra: 1},
		},
	}
	b, err := Normalize(RawBank{Lang: "en", Questions: []RawQuestion{rq}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	q := b.Questions[0]
	if q.Options[0].Chakra != chakra.Heart || q.Options[2].Chakra != chakra.Root {
		t.Errorf("tags not preserved: %+v", q.Options)
	}
	for i, opt := range q.Options {
		if opt.Weight != 1 {
			t.Errorf("option %d weight = %d, want 1", i, opt.Weight)
		}
	}
}

func TestNormalize_Tagged_MissingTag(t *testing.T) {
	rq := RawQuestion{
		Prompt:   "Tagged.",
		Encoding: EncodingTagged,
		Options:  []RawOption{{Label: "one"}},
	}
	_, err := Normalize(RawBank{Lang: "en", Questions: []RawQuestion{rq}})
	var merr *ErrMalformedQuestion
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *ErrMalformedQuestion", err)
	}
}

func TestNormalize_Likert(t *testing.T) {
	rq := RawQuestion{
		Prompt:   "Agree?",
		Encoding: EncodingLikert,
		Chakra:   5,
		Options: []RawOption{
			{Label: "not at all", Weight: intp(0)},
			{Label: "somewhat", Weight: intp(1)},
			{Label: "mostly", Weight: intp(2)},
			{Label: "fully", Weight: intp(3)},
		},
	}
	b, err := Normalize(RawBank{Lang: "en", Questions: []RawQuestion{rq}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	q := b.Questions[0]
	for i, opt := range q.Options {
		if opt.Chakra != chakra.Throat {
			t.Errorf("option %d chakra = %d, want %d", i, opt.Chakra, chakra.Throat)
		}
		if opt.Weight != i {
			t.Errorf("option %d weight = %d, want %d", i, opt.Weight, i)
		}
	}
}

func TestNormalize_Likert_MissingWeight(t *testing.T) {
	rq := RawQuestion{
		Prompt:   "Agree?",
		Encoding: EncodingLikert,
		Chakra:   5,
		Options:  []RawOption{{Label: "fully"}},
	}
	_, err := Normalize(RawBank{Lang: "en", Questions: []RawQuestion{rq}})
	var merr *ErrMalformedQuestion
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *ErrMalformedQuestion", err)
	}
}

func TestNormalize_NoOptions(t *testing.T) {
	rq := RawQuestion{Prompt: "Empty.", Encoding: EncodingTagged}
	_, err := Normalize(RawBank{Lang: "en", Questions: []RawQuestion{rq}})
	var merr *ErrMalformedQuestion
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *ErrMalformedQuestion", err)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := RawBank{Lang: "en", Questions: []RawQuestion{fixedQuestion()}}
	first, err := Normalize(raw)
	if err != nil {
		t.Fatalf("first Normalize: %v", err)
	}
	second, err := Normalize(raw)
	if err != nil {
		t.Fatalf("second Normalize: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Normalize is not idempotent: results differ")
	}
}

func TestDefault_BothLanguages(t *testing.T) {
	for _, lang := range Languages() {
		b, err := Default(lang)
		if err != nil {
			t.Fatalf("Default(%s): %v", lang, err)
		}
		if b.Len() != 25 {
			t.Errorf("Default(%s) has %d questions, want 25", lang, b.Len())
		}
		for i, q := range b.Questions {
			if len(q.Options) != 7 {
				t.Errorf("%s question %d has %d options, want 7", lang, i+1, len(q.Options))
			}
		}
	}
}

func TestParse_ValidTagged(t *testing.T) {
	data := []byte(`{
		"lang": "en",
		"questions": [
			{
				"prompt": "Pick.",
				"encoding": "tagged",
				"options": [
					{"label": "one", "chakra": 2},
					{"label": "two", "chakra": 6}
				]
			}
		]
	}`)
	b, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("questions = %d, want 1", b.Len())
	}
}

func TestParse_SchemaRejectsBadEncoding(t *testing.T) {
	data := []byte(`{"lang":"en","questions":[{"prompt":"x","encoding":"mystery"}]}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected schema error for unknown encoding")
	}
}

func TestParse_SchemaRejectsChakraOutOfRange(t *testing.T) {
	data := []byte(`{
		"lang": "en",
		"questions": [
			{"prompt": "x", "encoding": "tagged", "options": [{"label": "a", "chakra": 8}]}
		]
	}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected schema error for chakra > 7")
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
