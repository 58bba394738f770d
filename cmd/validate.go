package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwerner/chakratest/internal/bank"
)

var validateCmd = &cobra.Command{
	Use:   "validate <bank.json>",
	Short: "Validate a question bank file",
	Long: `Check a question bank JSON file against the bank schema and the
per-encoding rules. Exits non-zero with the first problem found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok — %d questions (%s)\n", args[0], b.Len(), b.Lang)
		return nil
	},
}
