package results

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mwerner/chakratest/internal/chakra"
	"github.com/mwerner/chakratest/internal/report"
	"github.com/mwerner/chakratest/internal/router"
	"github.com/mwerner/chakratest/internal/scoring"
	"github.com/mwerner/chakratest/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testModel(lang chakra.Lang) *report.Model {
	ranking := scoring.Rank(map[chakra.ID]int{
		chakra.Heart: 9, chakra.Root: 5, chakra.Crown: 2,
	})
	return report.Build(ranking, report.DefaultCorpus(lang), report.Options{TopN: 3, Lang: lang})
}

func TestNew_SectionsFromModel(t *testing.T) {
	s := New(testModel(chakra.LangEN), nil)
	if len(s.sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(s.sections))
	}
	if !s.sections[0].Open {
		t.Error("central analysis should start open")
	}
	if s.sections[1].Open {
		t.Error("secondary analysis should start closed")
	}
}

func TestDigitTogglesSection(t *testing.T) {
	s := New(testModel(chakra.LangEN), nil)

	s.Update(keyPress('2'))
	if !s.sections[1].Open {
		t.Error("pressing 2 should open the second section")
	}
	s.Update(keyPress('2'))
	if s.sections[1].Open {
		t.Error("pressing 2 again should close it")
	}

	// Out-of-range digits are ignored.
	s.Update(keyPress('9'))
}

func TestRestartEmitsReplace(t *testing.T) {
	called := 0
	s := New(testModel(chakra.LangEN), func() screen.Screen {
		called++
		return &stubScreen{}
	})

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a command from restart")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if called != 1 {
		t.Errorf("restart factory called %d times, want 1", called)
	}
}

func TestRestartWithoutFactory(t *testing.T) {
	s := New(testModel(chakra.LangEN), nil)
	_, cmd := s.Update(keyPress('r'))
	if cmd != nil {
		t.Error("restart without a factory should be a no-op")
	}
}

func TestExportStatus(t *testing.T) {
	s := New(testModel(chakra.LangEN), nil)

	s.Update(exportDoneMsg{path: "out.pdf"})
	if !s.statusOK || !strings.Contains(s.status, "out.pdf") {
		t.Errorf("status = %q ok=%v after success", s.status, s.statusOK)
	}

	s.Update(exportDoneMsg{path: "out.pdf", err: errors.New("disk full")})
	if s.statusOK || !strings.Contains(s.status, "disk full") {
		t.Errorf("status = %q ok=%v after failure", s.status, s.statusOK)
	}
}

func TestExportKeyEmitsCommand(t *testing.T) {
	s := New(testModel(chakra.LangEN), nil)
	_, cmd := s.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected an export command")
	}
}

func TestViewLocalized(t *testing.T) {
	s := New(testModel(chakra.LangDE), nil)
	view := s.View(80, 80)
	if !strings.Contains(view, "Punkteverteilung") {
		t.Error("German view should use the German chart heading")
	}
	if s.Title() != "Ergebnis" {
		t.Errorf("Title = %q, want Ergebnis", s.Title())
	}
}
