package components

import (
	"charm.land/lipgloss/v2"

	"github.com/mwerner/chakratest/internal/ui/theme"
)

// Collapse is a titled section whose body can be folded away.
type Collapse struct {
	Title string
	Body  string
	Open  bool
	Color string // hex accent for the title, empty for the default
}

// NewCollapse creates a collapsed section.
func NewCollapse(title, body string) Collapse {
	return Collapse{Title: title, Body: body}
}

// Toggle flips the open state.
func (c Collapse) Toggle() Collapse {
	c.Open = !c.Open
	return c
}

// View renders the section at the given width.
func (c Collapse) View(width int) string {
	marker := "▸"
	if c.Open {
		marker = "▾"
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if c.Color != "" {
		titleStyle = theme.ChakraStyle(c.Color).Bold(true)
	}
	s := titleStyle.Render(marker + " " + c.Title)

	if c.Open {
		body := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width - 2).
			PaddingLeft(2).
			Render(c.Body)
		s += "\n" + body
	}

	return s
}
