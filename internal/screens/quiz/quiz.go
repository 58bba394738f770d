package quiz

import (
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwerner/chakratest/internal/bank"
	"github.com/mwerner/chakratest/internal/chakra"
	qz "github.com/mwerner/chakratest/internal/quiz"
	"github.com/mwerner/chakratest/internal/report"
	"github.com/mwerner/chakratest/internal/router"
	"github.com/mwerner/chakratest/internal/scoring"
	"github.com/mwerner/chakratest/internal/screen"
	"github.com/mwerner/chakratest/internal/screens/results"
	"github.com/mwerner/chakratest/internal/ui/components"
	"github.com/mwerner/chakratest/internal/ui/layout"
	"github.com/mwerner/chakratest/internal/ui/theme"
)

// Config carries everything needed to run one quiz and to restart it
// from the results screen.
type Config struct {
	Bank    *bank.Bank
	Lang    chakra.Lang
	Shuffle bool
	TopN    int
	Rand    *rand.Rand
}

// QuizScreen drives a session question by question.
type QuizScreen struct {
	cfg     Config
	session *qz.Session
	choice  components.AnswerChoice
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a fresh session over the configured bank.
func New(cfg Config) (*QuizScreen, error) {
	session, err := qz.Start(cfg.Bank, qz.Options{Shuffle: cfg.Shuffle, Rand: cfg.Rand})
	if err != nil {
		return nil, err
	}
	s := &QuizScreen{cfg: cfg, session: session}
	s.loadCurrent()
	return s, nil
}

func (s *QuizScreen) loadCurrent() {
	q, err := s.session.Current()
	if err != nil {
		return
	}
	options := make([]string, len(q.Options))
	for i, o := range q.Options {
		options[i] = o.Label
	}
	s.choice = components.NewAnswerChoice(q.Prompt, options)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Chakra Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓/a-g", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abort"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if !s.choice.Submitted {
		return s, cmd
	}

	if err := s.session.Submit(s.choice.ChosenIndex); err != nil {
		// Out-of-range cannot happen with a choice bound to the
		// question's options; re-arm the selector and move on.
		s.loadCurrent()
		return s, cmd
	}

	if s.session.State() == qz.StateCompleted {
		return s, s.finish()
	}

	s.loadCurrent()
	return s, cmd
}

// finish builds the report from the completed session and swaps in the
// results screen.
func (s *QuizScreen) finish() tea.Cmd {
	ranking := scoring.Rank(s.session.Scores())
	model := report.Build(ranking, report.DefaultCorpus(s.cfg.Lang), report.Options{
		TopN: s.cfg.TopN,
		Lang: s.cfg.Lang,
	})

	cfg := s.cfg
	restart := func() screen.Screen {
		next, err := New(cfg)
		if err != nil {
			return nil
		}
		return next
	}

	resultsScreen := results.New(model, restart)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsScreen}
	}
}

func (s *QuizScreen) View(width, height int) string {
	current, total := s.session.Progress()

	label := "Question"
	if s.cfg.Lang == chakra.LangDE {
		label = "Frage"
	}

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	bar := components.NewProgressBar(label, current, total, barWidth)

	content := bar.View() + "\n\n" + s.choice.View()

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Width(min(width-4, 72)).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
