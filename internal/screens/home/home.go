package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwerner/chakratest/internal/bank"
	"github.com/mwerner/chakratest/internal/chakra"
	"github.com/mwerner/chakratest/internal/router"
	"github.com/mwerner/chakratest/internal/screen"
	quizscreen "github.com/mwerner/chakratest/internal/screens/quiz"
	"github.com/mwerner/chakratest/internal/ui/components"
	"github.com/mwerner/chakratest/internal/ui/theme"
)

// Config wires the home screen to the rest of the app.
type Config struct {
	// LoadBank resolves the question bank for a language.
	LoadBank func(lang chakra.Lang) (*bank.Bank, error)
	Lang     chakra.Lang
	Shuffle  bool
	TopN     int
	Rand     *rand.Rand
}

// HomeScreen is the main entry screen: start the quiz, switch the
// language, or leave.
type HomeScreen struct {
	cfg  Config
	menu components.Menu
	err  error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cfg Config) *HomeScreen {
	h := &HomeScreen{cfg: cfg}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	startLabel, langLabel, exitLabel := "Start Quiz", "Language", "Exit"
	if h.cfg.Lang == chakra.LangDE {
		startLabel, langLabel, exitLabel = "Quiz starten", "Sprache", "Beenden"
	}

	return []components.MenuItem{
		{Label: startLabel, Action: func() tea.Cmd {
			return h.startQuiz()
		}},
		{
			Label: fmt.Sprintf("%s: %s", langLabel, strings.ToUpper(string(h.cfg.Lang))),
			Hint:  "EN ⇄ DE",
			Action: func() tea.Cmd {
				return h.toggleLang()
			},
		},
		{Label: exitLabel, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	b, err := h.cfg.LoadBank(h.cfg.Lang)
	if err != nil {
		h.err = err
		return nil
	}
	qs, err := quizscreen.New(quizscreen.Config{
		Bank:    b,
		Lang:    h.cfg.Lang,
		Shuffle: h.cfg.Shuffle,
		TopN:    h.cfg.TopN,
		Rand:    h.cfg.Rand,
	})
	if err != nil {
		h.err = err
		return nil
	}
	h.err = nil
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: qs}
	}
}

func (h *HomeScreen) toggleLang() tea.Cmd {
	langs := bank.Languages()
	for i, l := range langs {
		if l == h.cfg.Lang {
			h.cfg.Lang = langs[(i+1)%len(langs)]
			break
		}
	}
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.buildItems())
	h.menu.Selected = selected

	lang := h.cfg.Lang
	return func() tea.Msg {
		return screen.LangChangedMsg{Lang: lang}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := "Which chakra shapes you?"
	desc := "Answer 25 questions and discover your energetic profile."
	if h.cfg.Lang == chakra.LangDE {
		title = "Welches Chakra prägt dich?"
		desc = "Beantworte 25 Fragen und entdecke dein energetisches Profil."
	}

	sections = append(sections, renderChakraDots())
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	sections = append(sections, theme.Hint.Render(desc))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	if h.err != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(fmt.Sprintf("cannot start: %v", h.err)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderChakraDots draws the seven chakras as a colored row, root
// first.
func renderChakraDots() string {
	all := chakra.All()
	parts := make([]string, 0, len(all))
	for _, c := range all {
		parts = append(parts, theme.ChakraStyle(c.Color).Render("●"))
	}
	return strings.Join(parts, " ")
}
