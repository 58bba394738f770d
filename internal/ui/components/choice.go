package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwerner/chakratest/internal/ui/theme"
)

// optionLetters labels answer options A through G.
const optionLetters = "abcdefg"

// AnswerChoice is a selector for one quiz question. There is no right
// or wrong option; submitting records whichever option is selected.
type AnswerChoice struct {
	Prompt      string
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewAnswerChoice creates an answer selector for a question.
func NewAnswerChoice(prompt string, options []string) AnswerChoice {
	return AnswerChoice{
		Prompt:      prompt,
		Options:     options,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (c AnswerChoice) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection. Letter keys a-g jump to
// that option directly; enter submits the selected one.
func (c AnswerChoice) Update(msg tea.Msg) (AnswerChoice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	default:
		if len(key) == 1 {
			if i := letterIndex(key[0]); i >= 0 && i < len(c.Options) {
				c.Selected = i
			}
		}
	}

	return c, nil
}

func letterIndex(b byte) int {
	for i := 0; i < len(optionLetters); i++ {
		if optionLetters[i] == b {
			return i
		}
	}
	return -1
}

// View renders the prompt and options.
func (c AnswerChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		label := "?"
		if i < len(optionLetters) {
			label = string(optionLetters[i] - 'a' + 'A')
		}
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
