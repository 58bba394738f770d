package bank

import "github.com/mwerner/chakratest/internal/chakra"

// Default returns the built-in 25-question bank for the given
// language. The data ships with the binary; normalization of it is
// covered by tests, so an error here means the seed itself is broken.
func Default(lang chakra.Lang) (*Bank, error) {
	raw := seedEN
	if lang == chakra.LangDE {
		raw = seedDE
	}
	return Normalize(raw)
}

// Languages lists the languages the built-in bank ships in.
func Languages() []chakra.Lang {
	return []chakra.Lang{chakra.LangEN, chakra.LangDE}
}
