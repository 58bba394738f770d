package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwerner/chakratest/internal/bank"
	"github.com/mwerner/chakratest/internal/chakra"
	"github.com/mwerner/chakratest/internal/router"
	"github.com/mwerner/chakratest/internal/screen"
	"github.com/mwerner/chakratest/internal/screens/home"
	"github.com/mwerner/chakratest/internal/screens/welcome"
	"github.com/mwerner/chakratest/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// LoadBank resolves the question bank per language. Defaults to
	// the built-in banks.
	LoadBank func(lang chakra.Lang) (*bank.Bank, error)
	Lang     chakra.Lang
	Shuffle  bool
	TopN     int
	Rand     *rand.Rand
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	lang   chakra.Lang
	width  int
	height int
}

// newAppModel creates an AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.LoadBank == nil {
		opts.LoadBank = bank.Default
	}
	if opts.Lang == "" {
		opts.Lang = chakra.LangEN
	}

	homeFactory := func() screen.Screen {
		return home.New(home.Config{
			LoadBank: opts.LoadBank,
			Lang:     opts.Lang,
			Shuffle:  opts.Shuffle,
			TopN:     opts.TopN,
			Rand:     opts.Rand,
		})
	}

	return AppModel{
		router: router.New(welcome.New(homeFactory)),
		lang:   opts.Lang,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.LangChangedMsg:
		m.lang = msg.Lang
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, string(m.lang), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
