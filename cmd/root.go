package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwerner/chakratest/internal/bank"
	"github.com/mwerner/chakratest/internal/chakra"
)

var rootCmd = &cobra.Command{
	Use:   "chakratest",
	Short: "Chakra personality quiz for the terminal",
	Long:  "ChakraTest — answer 25 questions and find out which of the seven chakras shapes your personality.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to a custom question bank JSON file (overrides the built-in banks)")
	rootCmd.PersistentFlags().String("lang", "", "Display language: en or de (overrides CHAKRATEST_LANG env var)")
	rootCmd.Flags().Bool("shuffle", false, "Shuffle question order")
	rootCmd.Flags().Int("top", 3, "Number of top chakras in the result summary")
	rootCmd.Flags().Int64("seed", 0, "Random seed for shuffling (0 = time-based)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveLang returns the display language from --lang (highest
// priority), then CHAKRATEST_LANG, then English.
func resolveLang(cmd *cobra.Command) (chakra.Lang, error) {
	val, _ := cmd.Flags().GetString("lang")
	if val == "" {
		val = os.Getenv("CHAKRATEST_LANG")
	}
	if val == "" {
		return chakra.LangEN, nil
	}

	lang := chakra.Lang(strings.ToLower(val))
	for _, l := range bank.Languages() {
		if l == lang {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q: must be en or de", val)
}

// resolveBankLoader returns the question bank loader. With --bank it
// loads that file for every language; otherwise the built-in banks are
// used.
func resolveBankLoader(cmd *cobra.Command) func(chakra.Lang) (*bank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return bank.Default
	}
	return func(chakra.Lang) (*bank.Bank, error) {
		return bank.Load(path)
	}
}
