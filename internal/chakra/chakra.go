// Package chakra defines the seven fixed chakra categories the quiz
// scores against. The set is static: chakras are never created or
// destroyed at runtime, and every other package treats this one as a
// read-only registry.
package chakra

// ID identifies one of the seven chakras, 1 (root) through 7 (crown).
type ID int

const (
	Root ID = iota + 1
	Sacral
	SolarPlexus
	Heart
	Throat
	ThirdEye
	Crown
)

// Count is the fixed number of chakras.
const Count = 7

// Lang selects the display language for user-facing strings.
type Lang string

const (
	LangEN Lang = "en"
	LangDE Lang = "de"
)

// Chakra is one entry of the registry.
type Chakra struct {
	ID        ID
	Slug      string
	Archetype string
	Color     string // hex, shared by the chart and the PDF exporter
}

var registry = [Count]Chakra{
	{ID: Root, Slug: "root", Archetype: "Builder", Color: "#e11d48"},
	{ID: Sacral, Slug: "sacral", Archetype: "Artist", Color: "#f97316"},
	{ID: SolarPlexus, Slug: "solar-plexus", Archetype: "Achiever", Color: "#eab308"},
	{ID: Heart, Slug: "heart", Archetype: "Caretaker", Color: "#22c55e"},
	{ID: Throat, Slug: "throat", Archetype: "Speaker", Color: "#3b82f6"},
	{ID: ThirdEye, Slug: "third-eye", Archetype: "Thinker", Color: "#8b5cf6"},
	{ID: Crown, Slug: "crown", Archetype: "Yogi", Color: "#9333ea"},
}

var names = map[Lang][Count]string{
	LangEN: {
		"Root Chakra", "Sacral Chakra", "Solar Plexus", "Heart Chakra",
		"Throat Chakra", "Third Eye", "Crown Chakra",
	},
	LangDE: {
		"Wurzelchakra", "Sakralchakra", "Solarplexus", "Herzchakra",
		"Halschakra", "Stirnchakra", "Kronenchakra",
	},
}

var descriptions = map[Lang][Count]string{
	LangEN: {
		"Stability, security, grounding.",
		"Creativity, joy, sensuality.",
		"Confidence, will, power.",
		"Love, compassion, connection.",
		"Communication, expression, truth.",
		"Intuition, clarity, vision.",
		"Spirituality, unity, trust.",
	},
	LangDE: {
		"Stabilität, Sicherheit, Erdung.",
		"Kreativität, Freude, Sexualität.",
		"Selbstbewusstsein, Wille, Kraft.",
		"Liebe, Mitgefühl, Verbundenheit.",
		"Kommunikation, Ausdruck, Wahrheit.",
		"Intuition, Klarheit, Vision.",
		"Spiritualität, Einheit, Vertrauen.",
	},
}

// Valid reports whether id is one of the seven chakra identifiers.
func Valid(id ID) bool {
	return id >= Root && id <= Crown
}

// Get returns the registry entry for id.
func Get(id ID) (Chakra, bool) {
	if !Valid(id) {
		return Chakra{}, false
	}
	return registry[id-1], true
}

// All returns the seven chakras in canonical order (root first). The
// canonical order is the fixed display order for charts and score
// listings and never depends on quiz results.
func All() []Chakra {
	out := make([]Chakra, Count)
	copy(out, registry[:])
	return out
}

// Name returns the localized display name of the chakra. Unknown
// languages fall back to English.
func (c Chakra) Name(lang Lang) string {
	tbl, ok := names[lang]
	if !ok {
		tbl = names[LangEN]
	}
	return tbl[c.ID-1]
}

// Description returns the localized one-line description.
func (c Chakra) Description(lang Lang) string {
	tbl, ok := descriptions[lang]
	if !ok {
		tbl = descriptions[LangEN]
	}
	return tbl[c.ID-1]
}
