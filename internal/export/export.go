// Package export renders a report model as a paginated A4 PDF.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mwerner/chakratest/internal/chakra"
	"github.com/mwerner/chakratest/internal/report"
	"github.com/mwerner/chakratest/internal/scoring"
)

// FileName is the default output file name.
const FileName = "chakra_quiz_result.pdf"

// Layout constants, all in millimeters on an A4 page.
const (
	marginX        = 14.0
	topY           = 18.0
	pageResetY     = 20.0
	contentLimit   = 285.0 // area boxes must end above this
	scoresLimit    = 270.0 // score rows must start above this
	scoresHeadroom = 260.0 // minimum space left for the score list heading
	cardW          = 180.0
	cardH          = 20.0
	colorBarW      = 4.0
	areaBoxX       = 16.0
	areaBoxW       = 178.0
	areaRadius     = 2.5
	areaPadX       = 3.0
	areaPadY       = 2.0
	descLineH      = 5.0
)

// Font sizes in points.
const (
	titleFont       = 18.0
	secTitleFont    = 14.0
	chakraTitleFont = 13.0
	areaFont        = 11.0
	areaDescFont    = 10.0
	scoreFont       = 11.0
	smallFont       = 9.0
)

type strTable struct {
	title        string
	summaryHead  string
	analysisHead map[report.Role]string
	scoresHead   string
	scoreLabel   string
}

var strTables = map[chakra.Lang]strTable{
	chakra.LangEN: {
		title:       "Chakra Quiz Result",
		summaryHead: "Central and Secondary Chakra Analysis:",
		analysisHead: map[report.Role]string{
			report.RoleCentral:   "Central Chakra Analysis",
			report.RoleSecondary: "Secondary Chakra Analysis",
		},
		scoresHead: "All Chakra Scores:",
		scoreLabel: "Score",
	},
	chakra.LangDE: {
		title:       "Chakra Quiz Ergebnis",
		summaryHead: "Zentrale und Sekundäre Chakra-Analyse:",
		analysisHead: map[report.Role]string{
			report.RoleCentral:   "Analyse zentrales Chakra",
			report.RoleSecondary: "Analyse sekundäres Chakra",
		},
		scoresHead: "Alle Chakra Scores:",
		scoreLabel: "Score",
	},
}

func stringsFor(lang chakra.Lang) strTable {
	if t, ok := strTables[lang]; ok {
		return t
	}
	return strTables[chakra.LangEN]
}

// hexToRGB parses a "#rrggbb" color. Malformed input yields black.
func hexToRGB(hex string) (int, int, int) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)
}

// writer tracks the vertical cursor across pages.
type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (w *writer) pageBreak() {
	w.pdf.AddPage()
	w.y = pageResetY
}

func (w *writer) text(x float64, s string) {
	w.pdf.Text(x, w.y, w.tr(s))
}

// WritePDF renders the report to path. The layout is the one the
// results screen shows: title, summary cards for the top chakras, one
// analysis section per card, then the full score list.
func WritePDF(m *report.Model, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	w := &writer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		y:   topY,
	}
	pdf.AddPage()

	tbl := stringsFor(m.Lang)

	pdf.SetFont("Helvetica", "B", titleFont)
	w.text(marginX, tbl.title)
	w.y += 8

	pdf.SetFont("Helvetica", "B", secTitleFont)
	w.text(marginX, tbl.summaryHead)
	w.y += 4

	for i, e := range m.Summary {
		if i >= 2 {
			break
		}
		drawSummaryCard(w, e, m.Lang)
		w.y += cardH + 2
	}
	w.y += 4

	for _, sec := range m.Sections {
		drawAnalysisSection(w, sec, tbl)
	}

	drawScoreList(w, m, tbl)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawSummaryCard(w *writer, e report.SummaryEntry, lang chakra.Lang) {
	pdf := w.pdf
	r, g, b := hexToRGB(e.Chakra.Color)

	pdf.SetDrawColor(230, 230, 230)
	pdf.SetFillColor(255, 255, 255)
	pdf.RoundedRect(marginX, w.y, cardW, cardH, 3, "1234", "F")

	pdf.SetFillColor(r, g, b)
	pdf.RoundedRect(marginX, w.y, colorBarW, cardH, areaRadius, "1234", "F")

	textX := marginX + colorBarW + 4
	pdf.SetFont("Helvetica", "B", secTitleFont)
	pdf.Text(textX, w.y+7, w.tr(e.Role.Label(lang)))

	pdf.SetFont("Helvetica", "B", chakraTitleFont)
	pdf.SetTextColor(r, g, b)
	pdf.Text(marginX+colorBarW+32, w.y+7, w.tr(e.Name))

	pdf.SetFont("Helvetica", "", smallFont)
	pdf.SetTextColor(60, 60, 60)
	pdf.Text(marginX+colorBarW+32, w.y+13, w.tr(e.Description))
	pdf.SetTextColor(0, 0, 0)
}

// areaBoxHeight computes the height of one life-area box from the
// number of wrapped description lines.
func areaBoxHeight(descLines int) float64 {
	return areaPadY*2 + 4 + float64(descLines)*descLineH
}

func drawAnalysisSection(w *writer, sec report.Section, tbl strTable) {
	pdf := w.pdf
	r, g, b := hexToRGB(sec.Chakra.Color)

	pdf.SetFont("Helvetica", "B", secTitleFont)
	pdf.SetTextColor(r, g, b)
	head, ok := tbl.analysisHead[sec.Role]
	if !ok {
		head = tbl.analysisHead[report.RoleSecondary]
	}
	w.text(marginX, fmt.Sprintf("%s: %s", head, sec.Name))
	pdf.SetTextColor(0, 0, 0)
	w.y += 6

	for _, area := range sec.Areas {
		pdf.SetFont("Helvetica", "", areaDescFont)
		lines := pdf.SplitText(area.Body, areaBoxW-2*areaPadX)
		boxH := areaBoxHeight(len(lines))
		if w.y+boxH > contentLimit {
			w.pageBreak()
		}

		pdf.SetDrawColor(230, 230, 230)
		pdf.SetFillColor(243, 244, 246)
		pdf.RoundedRect(areaBoxX, w.y, areaBoxW, boxH, areaRadius, "1234", "F")

		if area.Label != "" {
			pdf.SetFont("Helvetica", "B", areaFont)
			pdf.SetTextColor(r, g, b)
			pdf.Text(areaBoxX+areaPadX, w.y+areaPadY+4, w.tr(area.Label))
		}

		pdf.SetFont("Helvetica", "", areaDescFont)
		pdf.SetTextColor(34, 34, 59)
		lineY := w.y + areaPadY + 9
		for _, line := range lines {
			pdf.Text(areaBoxX+areaPadX, lineY, w.tr(line))
			lineY += descLineH
		}
		pdf.SetTextColor(0, 0, 0)
		w.y += boxH + 2
	}
	w.y += 5
}

func drawScoreList(w *writer, m *report.Model, tbl strTable) {
	pdf := w.pdf

	if w.y > scoresHeadroom {
		w.pageBreak()
	}
	pdf.SetFont("Helvetica", "B", secTitleFont)
	w.text(marginX, tbl.scoresHead)
	w.y += 6

	// The list runs score-descending like the summary, not in the
	// chart's canonical order.
	scores := make(map[chakra.ID]int, len(m.Distribution))
	labels := make(map[chakra.ID]string, len(m.Distribution))
	colors := make(map[chakra.ID]string, len(m.Distribution))
	for _, d := range m.Distribution {
		scores[d.Chakra] = d.Score
		labels[d.Chakra] = d.Label
		colors[d.Chakra] = d.Color
	}

	pdf.SetFont("Helvetica", "", scoreFont)
	for _, e := range scoring.Rank(scores) {
		r, g, b := hexToRGB(colors[e.Chakra])
		barX := marginX + 4
		pdf.SetFillColor(r, g, b)
		pdf.RoundedRect(barX, w.y-4, 4, 6, 1, "1234", "F")

		pdf.SetTextColor(r, g, b)
		pdf.SetFont("Helvetica", "B", scoreFont)
		w.text(barX+8, labels[e.Chakra])

		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Helvetica", "", scoreFont)
		w.text(barX+44, fmt.Sprintf("%s: %d", tbl.scoreLabel, e.Score))
		pdf.SetTextColor(0, 0, 0)

		w.y += 8
		if w.y > scoresLimit {
			w.pageBreak()
		}
	}
}
