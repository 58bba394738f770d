package chakra

import "testing"

func TestAll_CanonicalOrder(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("All() returned %d chakras, want %d", len(all), Count)
	}
	for i, c := range all {
		if c.ID != ID(i+1) {
			t.Errorf("All()[%d].ID = %d, want %d", i, c.ID, i+1)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Color = "#000000"
	if c, _ := Get(Root); c.Color != "#e11d48" {
		t.Errorf("mutating All() result changed the registry: Color = %q", c.Color)
	}
}

func TestGet_InvalidID(t *testing.T) {
	for _, id := range []ID{0, 8, -1} {
		if _, ok := Get(id); ok {
			t.Errorf("Get(%d) ok = true, want false", id)
		}
	}
}

func TestName_BothLanguages(t *testing.T) {
	c, _ := Get(Heart)
	if got := c.Name(LangEN); got != "Heart Chakra" {
		t.Errorf("Name(en) = %q, want %q", got, "Heart Chakra")
	}
	if got := c.Name(LangDE); got != "Herzchakra" {
		t.Errorf("Name(de) = %q, want %q", got, "Herzchakra")
	}
}

func TestName_UnknownLangFallsBackToEnglish(t *testing.T) {
	c, _ := Get(Crown)
	if got := c.Name(Lang("fr")); got != c.Name(LangEN) {
		t.Errorf("Name(fr) = %q, want English fallback %q", got, c.Name(LangEN))
	}
}

func TestColors_UniquePerChakra(t *testing.T) {
	seen := map[string]ID{}
	for _, c := range All() {
		if prev, dup := seen[c.Color]; dup {
			t.Errorf("chakra %d and %d share color %s", prev, c.ID, c.Color)
		}
		seen[c.Color] = c.ID
	}
}
