package cmd

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/mwerner/chakratest/internal/app"
)

// runApp resolves options and launches the TUI.
func runApp(cmd *cobra.Command) error {
	lang, err := resolveLang(cmd)
	if err != nil {
		return err
	}

	shuffle, _ := cmd.Flags().GetBool("shuffle")
	topN, _ := cmd.Flags().GetInt("top")
	seed, _ := cmd.Flags().GetInt64("seed")

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	return app.Run(app.Options{
		LoadBank: resolveBankLoader(cmd),
		Lang:     lang,
		Shuffle:  shuffle,
		TopN:     topN,
		Rand:     rng,
	})
}
