// Package scoring turns a completed session's score map into a
// deterministic ranking over all seven chakras.
package scoring

import (
	"sort"

	"github.com/mwerner/chakratest/internal/chakra"
)

// Entry pairs a chakra with its accumulated score.
type Entry struct {
	Chakra chakra.ID
	Score  int
}

// Rank returns all seven chakras ordered by score descending. Equal
// scores order by ascending chakra ID, so the ranking is a total
// order and identical inputs always produce identical output.
// Chakras missing from the map rank with score 0.
func Rank(scores map[chakra.ID]int) []Entry {
	entries := make([]Entry, 0, chakra.Count)
	for _, c := range chakra.All() {
		entries = append(entries, Entry{Chakra: c.ID, Score: scores[c.ID]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Chakra < entries[j].Chakra
	})
	return entries
}

// TopN returns the first n entries of a ranking, clamping n to the
// available range.
func TopN(ranking []Entry, n int) []Entry {
	if n < 0 {
		n = 0
	}
	if n > len(ranking) {
		n = len(ranking)
	}
	out := make([]Entry, n)
	copy(out, ranking[:n])
	return out
}
