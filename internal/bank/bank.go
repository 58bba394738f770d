// Package bank normalizes question-bank data into the one canonical
// form the session and scoring packages consume. Three raw encodings
// are supported: fixed letter-keyed maps (option position = chakra),
// explicitly tagged options, and single-chakra Likert questions with
// per-option weights.
package bank

import "github.com/mwerner/chakratest/internal/chakra"

// Encoding names one of the supported raw question shapes.
type Encoding string

const (
	// EncodingFixed maps option position 1:1 to chakra ID: the option
	// under letter "a" always contributes to the root chakra, "g" to
	// the crown. Weight is always 1.
	EncodingFixed Encoding = "fixed"

	// EncodingTagged carries an explicit chakra tag on every option.
	// Tags may repeat or omit chakras. Weight is always 1.
	EncodingTagged Encoding = "tagged"

	// EncodingLikert pre-tags the whole question with one chakra;
	// every option contributes to that chakra with its own weight.
	EncodingLikert Encoding = "likert"
)

// Option is one selectable answer in canonical form. Selecting it
// contributes Weight points to Chakra.
type Option struct {
	Label  string
	Chakra chakra.ID
	Weight int
}

// Question is a normalized question: a prompt and 2-7 options, each
// resolving to exactly one (chakra, weight) contribution.
type Question struct {
	Prompt  string
	Options []Option
}

// Bank is an ordered, normalized question sequence for one language.
type Bank struct {
	Lang      chakra.Lang
	Questions []Question
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.Questions)
}

// RawOption is the wire form of an option in tagged and likert
// questions.
type RawOption struct {
	Label  string `json:"label"`
	Chakra int    `json:"chakra,omitempty"`
	Weight *int   `json:"weight,omitempty"`
}

// RawQuestion is the wire form of a question before normalization.
// Which fields apply depends on Encoding: fixed questions use Answers,
// tagged questions use Options with per-option chakra tags, likert
// questions use Chakra plus Options with per-option weights.
type RawQuestion struct {
	Prompt   string            `json:"prompt"`
	Encoding Encoding          `json:"encoding"`
	Answers  map[string]string `json:"answers,omitempty"`
	Options  []RawOption       `json:"options,omitempty"`
	Chakra   int               `json:"chakra,omitempty"`
}

// RawBank is the wire form of a whole bank.
type RawBank struct {
	Lang      string        `json:"lang"`
	Questions []RawQuestion `json:"questions"`
}

// fixedLetters orders the letter keys of a fixed-encoding answer map.
// Position in this string is the chakra ID minus one.
const fixedLetters = "abcdefg"

// Normalize converts a raw bank into canonical form. It is a pure
// function: the input is never mutated and repeated calls yield
// structurally equal results. A question that cannot be resolved
// aborts the whole normalization with *ErrMalformedQuestion.
func Normalize(raw RawBank) (*Bank, error) {
	out := &Bank{
		Lang:      chakra.Lang(raw.Lang),
		Questions: make([]Question, 0, len(raw.Questions)),
	}

	for i, rq := range raw.Questions {
		q, err := normalizeQuestion(i, rq)
		if err != nil {
			return nil, err
		}
		out.Questions = append(out.Questions, q)
	}

	return out, nil
}

func normalizeQuestion(index int, rq RawQuestion) (Question, error) {
	q := Question{Prompt: rq.Prompt}

	switch rq.Encoding {
	case EncodingFixed:
		for pos, letter := range fixedLetters {
			label, ok := rq.Answers[string(letter)]
			if !ok || label == "" {
				continue
			}
			q.Options = append(q.Options, Option{
				Label:  label,
				Chakra: chakra.ID(pos + 1),
				Weight: 1,
			})
		}
		// Letters past "g" have no chakra to land on.
		for letter := range rq.Answers {
			if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'g' {
				return Question{}, &ErrMalformedQuestion{
					Question: index,
					Option:   letter,
					Reason:   "fixed-encoding answer key outside a-g",
				}
			}
		}

	case EncodingTagged:
		for j, ro := range rq.Options {
			id := chakra.ID(ro.Chakra)
			if !chakra.Valid(id) {
				return Question{}, &ErrMalformedQuestion{
					Question: index,
					Option:   optionName(j),
					Reason:   "tagged option has no valid chakra tag",
				}
			}
			q.Options = append(q.Options, Option{Label: ro.Label, Chakra: id, Weight: 1})
		}

	case EncodingLikert:
		id := chakra.ID(rq.Chakra)
		if !chakra.Valid(id) {
			return Question{}, &ErrMalformedQuestion{
				Question: index,
				Reason:   "likert question has no valid chakra tag",
			}
		}
		for j, ro := range rq.Options {
			if ro.Weight == nil || *ro.Weight < 0 {
				return Question{}, &ErrMalformedQuestion{
					Question: index,
					Option:   optionName(j),
					Reason:   "likert option needs a non-negative weight",
				}
			}
			q.Options = append(q.Options, Option{Label: ro.Label, Chakra: id, Weight: *ro.Weight})
		}

	default:
		return Question{}, &ErrMalformedQuestion{
			Question: index,
			Reason:   "unknown encoding " + string(rq.Encoding),
		}
	}

	if len(q.Options) == 0 {
		return Question{}, &ErrMalformedQuestion{
			Question: index,
			Reason:   "question has no resolvable options",
		}
	}

	return q, nil
}

func optionName(j int) string {
	if j >= 0 && j < len(fixedLetters) {
		return string(fixedLetters[j])
	}
	return "?"
}
