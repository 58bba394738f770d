package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwerner/chakratest/internal/chakra"
	"github.com/mwerner/chakratest/internal/chart"
	"github.com/mwerner/chakratest/internal/export"
	"github.com/mwerner/chakratest/internal/report"
	"github.com/mwerner/chakratest/internal/router"
	"github.com/mwerner/chakratest/internal/screen"
	"github.com/mwerner/chakratest/internal/ui/components"
	"github.com/mwerner/chakratest/internal/ui/layout"
	"github.com/mwerner/chakratest/internal/ui/theme"
)

type exportDoneMsg struct {
	path string
	err  error
}

// ResultsScreen presents the finished quiz: summary cards, the score
// chart, and the collapsible per-chakra analysis, all inside a
// scrolling viewport.
type ResultsScreen struct {
	model    *report.Model
	restart  func() screen.Screen
	vp       viewport.Model
	sections []components.Collapse
	status   string
	statusOK bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a built report. restart produces
// a fresh quiz screen when the user wants another round.
func New(model *report.Model, restart func() screen.Screen) *ResultsScreen {
	s := &ResultsScreen{
		model:   model,
		restart: restart,
		vp:      viewport.New(),
	}
	for _, sec := range model.Sections {
		c := components.NewCollapse(
			fmt.Sprintf("%s: %s", sec.Role.Label(model.Lang), sec.Name),
			renderAreas(sec.Areas, sec.Chakra.Color),
		)
		c.Color = sec.Chakra.Color
		s.sections = append(s.sections, c)
	}
	// The central analysis starts open.
	if len(s.sections) > 0 {
		s.sections[0].Open = true
	}
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	if s.model.Lang == chakra.LangDE {
		return "Ergebnis"
	}
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "1-9", Description: "Fold"},
		{Key: "e", Description: "PDF"},
		{Key: "r", Description: "Restart"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			s.status = fmt.Sprintf("PDF export failed: %v", msg.err)
			s.statusOK = false
		} else {
			s.status = fmt.Sprintf("Saved %s", msg.path)
			s.statusOK = true
		}
		return s, nil

	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "e":
			return s, s.exportCmd()
		case "r":
			if s.restart != nil {
				if next := s.restart(); next != nil {
					return s, func() tea.Msg {
						return router.ReplaceScreenMsg{Screen: next}
					}
				}
			}
			return s, nil
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				i := int(key[0] - '1')
				if i < len(s.sections) {
					s.sections[i] = s.sections[i].Toggle()
				}
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) exportCmd() tea.Cmd {
	m := s.model
	return func() tea.Msg {
		err := export.WritePDF(m, export.FileName)
		return exportDoneMsg{path: export.FileName, err: err}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	statusHeight := 0
	if s.status != "" {
		statusHeight = 2
	}

	s.vp.SetWidth(width)
	s.vp.SetHeight(height - statusHeight)
	s.vp.SetContent(s.renderContent(width))

	out := s.vp.View()
	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Secondary)
		if !s.statusOK {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		out += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(s.status))
	}
	return out
}

func (s *ResultsScreen) renderContent(width int) string {
	m := s.model
	de := m.Lang == chakra.LangDE

	inner := width - 8
	if inner > 76 {
		inner = 76
	}
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	title := "Your Chakra Profile"
	if de {
		title = "Dein Chakra-Profil"
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	// Central and secondary cards.
	for i, e := range m.Summary {
		if i >= 2 {
			break
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderSummaryCard(e, m.Lang, inner)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Ranked list of all summary entries (top 3 by default).
	listHead := fmt.Sprintf("Top %d", len(m.Summary))
	if de {
		listHead = fmt.Sprintf("Deine Top %d", len(m.Summary))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(listHead)))
	b.WriteString("\n")
	for i, e := range m.Summary {
		line := fmt.Sprintf("%d. %s", i+1,
			theme.ChakraStyle(e.Chakra.Color).Bold(true).Render(e.Name)) +
			theme.Hint.Render(fmt.Sprintf("  %d", e.Score))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Score distribution chart in canonical chakra order.
	chartHead := "Score Distribution"
	if de {
		chartHead = "Punkteverteilung"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(chartHead)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		chart.Render(chart.FromModel(m), inner)))
	b.WriteString("\n\n")

	// Collapsible analysis sections.
	for i, c := range s.sections {
		numbered := c
		numbered.Title = fmt.Sprintf("[%d] %s", i+1, c.Title)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(inner).Render(numbered.View(inner))))
		b.WriteString("\n\n")
	}

	return b.String()
}

func renderSummaryCard(e report.SummaryEntry, lang chakra.Lang, width int) string {
	accent := theme.ChakraStyle(e.Chakra.Color)

	head := accent.Bold(true).Render(e.Name) +
		theme.Hint.Render(fmt.Sprintf("  (%s)", e.Chakra.Archetype))
	role := lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.Role.Label(lang))
	score := lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("Score: %d", e.Score))

	body := role + "\n" + head + "\n" + theme.Body.Render(e.Description) + "\n" + score

	// Colored left edge in place of the PDF's color bar.
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = accent.Render("▌ ") + l
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

// renderAreas lays the life areas of one analysis out as label plus
// wrapped body text.
func renderAreas(areas []report.Area, color string) string {
	var parts []string
	for _, a := range areas {
		if a.Label != "" {
			parts = append(parts,
				theme.ChakraStyle(color).Bold(true).Render(a.Label)+"\n"+a.Body)
		} else {
			parts = append(parts, a.Body)
		}
	}
	return strings.Join(parts, "\n\n")
}
