package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwerner/chakratest/internal/chakra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the question bank with its chakra mapping",
	Long: `Print every question of the active bank together with the chakra and
weight each option contributes to. Useful for reviewing a custom bank
before handing it to someone.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	lang, err := resolveLang(cmd)
	if err != nil {
		return err
	}
	b, err := resolveBankLoader(cmd)(lang)
	if err != nil {
		return err
	}

	fmt.Printf("Bank: %s — %d questions\n\n", b.Lang, b.Len())

	for i, q := range b.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, b.Len())
		fmt.Println(q.Prompt)
		for j, o := range q.Options {
			c, _ := chakra.Get(o.Chakra)
			fmt.Printf("  %c)  %-60s → %s (weight %d)\n",
				'a'+j, o.Label, c.Slug, o.Weight)
		}
		fmt.Println()
	}
	return nil
}
