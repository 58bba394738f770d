package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.Msg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestAnswerChoice_Navigation(t *testing.T) {
	c := NewAnswerChoice("q", []string{"one", "two", "three"})

	c, _ = c.Update(key("j"))
	if c.Selected != 1 {
		t.Errorf("Selected = %d after j, want 1", c.Selected)
	}
	c, _ = c.Update(key("k"))
	if c.Selected != 0 {
		t.Errorf("Selected = %d after k, want 0", c.Selected)
	}
	// No wrap past the top.
	c, _ = c.Update(key("k"))
	if c.Selected != 0 {
		t.Errorf("Selected = %d, want to stay at 0", c.Selected)
	}
}

func TestAnswerChoice_LetterJump(t *testing.T) {
	c := NewAnswerChoice("q", []string{"1", "2", "3", "4", "5", "6", "7"})
	c, _ = c.Update(key("g"))
	if c.Selected != 6 {
		t.Errorf("Selected = %d after g, want 6", c.Selected)
	}
	// Letter beyond the option count is ignored.
	c = NewAnswerChoice("q", []string{"1", "2"})
	c, _ = c.Update(key("g"))
	if c.Selected != 0 {
		t.Errorf("Selected = %d, want 0 for out-of-range letter", c.Selected)
	}
}

func TestAnswerChoice_Submit(t *testing.T) {
	c := NewAnswerChoice("q", []string{"one", "two"})
	c, _ = c.Update(key("j"))

	kmsg := tea.KeyPressMsg{Code: tea.KeyEnter}
	c, _ = c.Update(kmsg)
	if !c.Submitted || c.ChosenIndex != 1 {
		t.Errorf("after enter: Submitted=%v ChosenIndex=%d, want true/1", c.Submitted, c.ChosenIndex)
	}

	// Further input is ignored once submitted.
	c, _ = c.Update(key("k"))
	if c.Selected != 1 {
		t.Errorf("Selected changed after submit: %d", c.Selected)
	}
}

func TestCollapse_Toggle(t *testing.T) {
	c := NewCollapse("Health", "rest well")
	if c.Open {
		t.Fatal("new collapse should start closed")
	}
	if strings.Contains(c.View(40), "rest well") {
		t.Error("closed collapse should hide its body")
	}
	c = c.Toggle()
	if !strings.Contains(c.View(40), "rest well") {
		t.Error("open collapse should show its body")
	}
}

func TestProgressBar_Percent(t *testing.T) {
	cases := []struct {
		current, total int
		want           float64
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
		{15, 10, 1},
		{3, 0, 0},
	}
	for _, c := range cases {
		p := NewProgressBar("", c.current, c.total, 40)
		if got := p.Percent(); got != c.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", c.current, c.total, got, c.want)
		}
	}
}
