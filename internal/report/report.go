// Package report builds the renderer-agnostic result model from a
// ranking and the per-chakra analysis corpus. The TUI results screen
// and the PDF exporter both consume the same Model, so neither ever
// touches session or scoring internals.
package report

import (
	"strings"

	"github.com/mwerner/chakratest/internal/chakra"
	"github.com/mwerner/chakratest/internal/scoring"
)

// Role tags a summary entry by its rank.
type Role string

const (
	RoleCentral   Role = "central"
	RoleSecondary Role = "secondary"
	RoleTertiary  Role = "tertiary"
)

// roleForRank maps a 0-based rank position to its role.
func roleForRank(pos int) Role {
	switch pos {
	case 0:
		return RoleCentral
	case 1:
		return RoleSecondary
	default:
		return RoleTertiary
	}
}

// Label returns the localized display label for the role.
func (r Role) Label(lang chakra.Lang) string {
	if lang == chakra.LangDE {
		switch r {
		case RoleCentral:
			return "Zentral"
		case RoleSecondary:
			return "Sekundär"
		default:
			return "Tertiär"
		}
	}
	switch r {
	case RoleCentral:
		return "Central"
	case RoleSecondary:
		return "Secondary"
	default:
		return "Tertiary"
	}
}

// SummaryEntry is one of the top-ranked chakras with its display
// metadata resolved.
type SummaryEntry struct {
	Chakra      chakra.Chakra
	Role        Role
	Score       int
	Name        string
	Description string
}

// DistEntry is one bar of the score distribution, in canonical
// chakra order regardless of ranking, so charts stay visually
// comparable between runs.
type DistEntry struct {
	Chakra chakra.ID
	Label  string
	Score  int
	Color  string
}

// Area is one life-area subsection of an analysis text.
type Area struct {
	Label string
	Body  string
}

// Section is the full analysis for one top-ranked chakra.
type Section struct {
	Chakra chakra.Chakra
	Role   Role
	Name   string
	Areas  []Area
}

// Model is the complete render-agnostic report.
type Model struct {
	Lang         chakra.Lang
	Summary      []SummaryEntry
	Distribution []DistEntry
	Sections     []Section
}

// Options configures report building.
type Options struct {
	// TopN is the number of summary entries, 2 or 3 in current use.
	// Zero means the default of 2; values past seven clamp.
	TopN int
	Lang chakra.Lang
}

// analysisSections is the number of chakras that get a full analysis
// section: central and secondary, matching the on-screen and PDF
// layouts.
const analysisSections = 2

// Build derives a Model from a ranking and the analysis corpus. It
// never mutates its inputs and can be called repeatedly.
func Build(ranking []scoring.Entry, corpus Corpus, opts Options) *Model {
	topN := opts.TopN
	if topN == 0 {
		topN = 2
	}
	lang := opts.Lang

	m := &Model{Lang: lang}

	for pos, e := range scoring.TopN(ranking, topN) {
		c, ok := chakra.Get(e.Chakra)
		if !ok {
			continue
		}
		m.Summary = append(m.Summary, SummaryEntry{
			Chakra:      c,
			Role:        roleForRank(pos),
			Score:       e.Score,
			Name:        c.Name(lang),
			Description: c.Description(lang),
		})
	}

	byID := make(map[chakra.ID]int, len(ranking))
	for _, e := range ranking {
		byID[e.Chakra] = e.Score
	}
	for _, c := range chakra.All() {
		m.Distribution = append(m.Distribution, DistEntry{
			Chakra: c.ID,
			Label:  c.Name(lang),
			Score:  byID[c.ID],
			Color:  c.Color,
		})
	}

	for pos, e := range scoring.TopN(ranking, analysisSections) {
		c, ok := chakra.Get(e.Chakra)
		if !ok {
			continue
		}
		m.Sections = append(m.Sections, Section{
			Chakra: c,
			Role:   roleForRank(pos),
			Name:   c.Name(lang),
			Areas:  SplitAreas(corpus[e.Chakra]),
		})
	}

	return m
}

// SplitAreas segments an analysis text into life-area subsections.
// Each non-empty line splits at its first colon into label and body;
// a line without a colon becomes a body-only area.
func SplitAreas(text string) []Area {
	var areas []Area
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if idx := strings.Index(line, ":"); idx >= 0 {
			areas = append(areas, Area{
				Label: strings.TrimSpace(line[:idx]),
				Body:  strings.TrimSpace(line[idx+1:]),
			})
		} else {
			areas = append(areas, Area{Body: line})
		}
	}
	return areas
}
