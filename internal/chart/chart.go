// Package chart turns a report's score distribution into horizontal
// bar chart data and renders it for the terminal.
package chart

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mwerner/chakratest/internal/report"
	"github.com/mwerner/chakratest/internal/ui/theme"
)

// BarData holds the parallel slices describing one bar chart. Index i
// across the three slices describes the same bar.
type BarData struct {
	Labels []string
	Values []int
	Colors []string
}

// FromModel extracts bar chart data from a report, preserving the
// distribution's canonical order.
func FromModel(m *report.Model) BarData {
	d := BarData{
		Labels: make([]string, 0, len(m.Distribution)),
		Values: make([]int, 0, len(m.Distribution)),
		Colors: make([]string, 0, len(m.Distribution)),
	}
	for _, e := range m.Distribution {
		d.Labels = append(d.Labels, e.Label)
		d.Values = append(d.Values, e.Score)
		d.Colors = append(d.Colors, e.Color)
	}
	return d
}

// Max returns the largest value, or 0 for empty data.
func (d BarData) Max() int {
	max := 0
	for _, v := range d.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// Render draws the chart as one line per bar: right-padded label, a
// colored bar scaled against the maximum value, and the numeric score.
// A zero score renders without a bar. Width is the total line budget.
func Render(d BarData, width int) string {
	if len(d.Labels) == 0 {
		return ""
	}

	labelWidth := 0
	for _, l := range d.Labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}

	// label + two spaces + bar + space + score
	barBudget := width - labelWidth - 3 - 3
	if barBudget < 4 {
		barBudget = 4
	}
	max := d.Max()

	var b strings.Builder
	for i, label := range d.Labels {
		if i > 0 {
			b.WriteByte('\n')
		}
		pad := labelWidth - lipgloss.Width(label)
		b.WriteString(theme.Body.Render(label))
		b.WriteString(strings.Repeat(" ", pad+2))

		filled := 0
		if max > 0 {
			filled = d.Values[i] * barBudget / max
		}
		if d.Values[i] > 0 && filled == 0 {
			filled = 1
		}
		if filled > 0 {
			bar := lipgloss.NewStyle().
				Background(lipgloss.Color(d.Colors[i])).
				Render(strings.Repeat(" ", filled))
			b.WriteString(bar)
			b.WriteByte(' ')
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d", d.Values[i])))
	}
	return b.String()
}
