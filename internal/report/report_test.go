package report

import (
	"reflect"
	"testing"

	"github.com/mwerner/chakratest/internal/chakra"
	"github.com/mwerner/chakratest/internal/scoring"
)

func rankingFor(scores map[chakra.ID]int) []scoring.Entry {
	return scoring.Rank(scores)
}

func TestBuild_SummaryRoles(t *testing.T) {
	ranking := rankingFor(map[chakra.ID]int{
		chakra.Heart: 9, chakra.Throat: 5, chakra.Root: 3,
	})
	m := Build(ranking, DefaultCorpus(chakra.LangEN), Options{TopN: 3, Lang: chakra.LangEN})

	if len(m.Summary) != 3 {
		t.Fatalf("summary has %d entries, want 3", len(m.Summary))
	}
	wantRoles := []Role{RoleCentral, RoleSecondary, RoleTertiary}
	wantChakras := []chakra.ID{chakra.Heart, chakra.Throat, chakra.Root}
	for i, e := range m.Summary {
		if e.Role != wantRoles[i] {
			t.Errorf("summary[%d].Role = %s, want %s", i, e.Role, wantRoles[i])
		}
		if e.Chakra.ID != wantChakras[i] {
			t.Errorf("summary[%d].Chakra = %d, want %d", i, e.Chakra.ID, wantChakras[i])
		}
		if e.Name == "" || e.Description == "" {
			t.Errorf("summary[%d] missing name or description", i)
		}
	}
}

func TestBuild_DefaultTopN(t *testing.T) {
	m := Build(rankingFor(nil), DefaultCorpus(chakra.LangEN), Options{Lang: chakra.LangEN})
	if len(m.Summary) != 2 {
		t.Errorf("default summary has %d entries, want 2", len(m.Summary))
	}
}

func TestBuild_DistributionCanonicalOrder(t *testing.T) {
	// Distribution order never follows the ranking, always chakra 1..7.
	ranking := rankingFor(map[chakra.ID]int{chakra.Crown: 20, chakra.Root: 1})
	m := Build(ranking, DefaultCorpus(chakra.LangEN), Options{Lang: chakra.LangEN})

	if len(m.Distribution) != chakra.Count {
		t.Fatalf("distribution has %d entries, want %d", len(m.Distribution), chakra.Count)
	}
	for i, d := range m.Distribution {
		if d.Chakra != chakra.ID(i+1) {
			t.Errorf("distribution[%d] = chakra %d, want %d", i, d.Chakra, i+1)
		}
		if d.Label == "" || d.Color == "" {
			t.Errorf("distribution[%d] missing label or color", i)
		}
	}
	if m.Distribution[6].Score != 20 || m.Distribution[0].Score != 1 {
		t.Errorf("distribution scores misplaced: %+v", m.Distribution)
	}
}

func TestBuild_SectionsTopTwoOnly(t *testing.T) {
	ranking := rankingFor(map[chakra.ID]int{
		chakra.Sacral: 8, chakra.ThirdEye: 6, chakra.Heart: 5,
	})
	m := Build(ranking, DefaultCorpus(chakra.LangDE), Options{TopN: 3, Lang: chakra.LangDE})

	if len(m.Sections) != 2 {
		t.Fatalf("sections = %d, want 2 even with TopN 3", len(m.Sections))
	}
	if m.Sections[0].Chakra.ID != chakra.Sacral || m.Sections[1].Chakra.ID != chakra.ThirdEye {
		t.Errorf("section chakras = %d, %d", m.Sections[0].Chakra.ID, m.Sections[1].Chakra.ID)
	}
	for i, sec := range m.Sections {
		if len(sec.Areas) != 6 {
			t.Errorf("section %d has %d areas, want 6", i, len(sec.Areas))
		}
	}
	if m.Sections[0].Areas[0].Label != "Beziehungen" {
		t.Errorf("first area label = %q, want Beziehungen", m.Sections[0].Areas[0].Label)
	}
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	ranking := rankingFor(map[chakra.ID]int{chakra.Root: 4})
	before := make([]scoring.Entry, len(ranking))
	copy(before, ranking)
	corpus := Corpus{chakra.Root: "Area: text"}

	Build(ranking, corpus, Options{Lang: chakra.LangEN})

	if !reflect.DeepEqual(ranking, before) {
		t.Error("Build mutated the ranking")
	}
	if corpus[chakra.Root] != "Area: text" {
		t.Error("Build mutated the corpus")
	}
}

func TestSplitAreas(t *testing.T) {
	areas := SplitAreas("Career: long days\n\nHealth: rest well: often\nno colon here")
	want := []Area{
		{Label: "Career", Body: "long days"},
		{Label: "Health", Body: "rest well: often"},
		{Body: "no colon here"},
	}
	if !reflect.DeepEqual(areas, want) {
		t.Errorf("SplitAreas = %+v, want %+v", areas, want)
	}
}

func TestSplitAreas_Empty(t *testing.T) {
	if got := SplitAreas(""); got != nil {
		t.Errorf("SplitAreas(\"\") = %+v, want nil", got)
	}
}

func TestDefaultCorpus_CoversAllChakras(t *testing.T) {
	for _, lang := range []chakra.Lang{chakra.LangEN, chakra.LangDE} {
		corpus := DefaultCorpus(lang)
		for _, c := range chakra.All() {
			text, ok := corpus[c.ID]
			if !ok || text == "" {
				t.Errorf("%s corpus missing chakra %d", lang, c.ID)
				continue
			}
			if areas := SplitAreas(text); len(areas) != 6 {
				t.Errorf("%s corpus chakra %d splits into %d areas, want 6", lang, c.ID, len(areas))
			}
		}
	}
}

func TestRoleLabel(t *testing.T) {
	cases := []struct {
		role Role
		lang chakra.Lang
		want string
	}{
		{RoleCentral, chakra.LangEN, "Central"},
		{RoleCentral, chakra.LangDE, "Zentral"},
		{RoleSecondary, chakra.LangDE, "Sekundär"},
		{RoleTertiary, chakra.LangEN, "Tertiary"},
	}
	for _, c := range cases {
		if got := c.role.Label(c.lang); got != c.want {
			t.Errorf("Label(%s, %s) = %q, want %q", c.role, c.lang, got, c.want)
		}
	}
}
