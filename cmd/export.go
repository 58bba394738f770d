package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwerner/chakratest/internal/export"
	"github.com/mwerner/chakratest/internal/quiz"
	"github.com/mwerner/chakratest/internal/report"
	"github.com/mwerner/chakratest/internal/scoring"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the quiz non-interactively and write the PDF report",
	Long: `Answer the whole quiz from the command line and write the result PDF.

--answers takes one comma-separated 1-based option number per question,
in bank order, e.g. "1,3,2,..." for a 25-question bank.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("answers", "", "Comma-separated 1-based option numbers, one per question (required)")
	exportCmd.Flags().String("out", export.FileName, "Output PDF path")
	exportCmd.Flags().Int("top", 3, "Number of top chakras in the result summary")
	_ = exportCmd.MarkFlagRequired("answers")
}

func runExport(cmd *cobra.Command, args []string) error {
	lang, err := resolveLang(cmd)
	if err != nil {
		return err
	}
	b, err := resolveBankLoader(cmd)(lang)
	if err != nil {
		return err
	}

	answersVal, _ := cmd.Flags().GetString("answers")
	out, _ := cmd.Flags().GetString("out")
	topN, _ := cmd.Flags().GetInt("top")

	answers, err := parseAnswers(answersVal)
	if err != nil {
		return err
	}
	if len(answers) != b.Len() {
		return fmt.Errorf("got %d answers for %d questions", len(answers), b.Len())
	}

	session, err := quiz.Start(b, quiz.Options{})
	if err != nil {
		return err
	}
	for i, a := range answers {
		if err := session.Submit(a - 1); err != nil {
			return fmt.Errorf("answer %d: %w", i+1, err)
		}
	}

	ranking := scoring.Rank(session.Scores())
	model := report.Build(ranking, report.DefaultCorpus(lang), report.Options{
		TopN: topN,
		Lang: lang,
	})

	if err := export.WritePDF(model, out); err != nil {
		return err
	}
	fmt.Println("Wrote", out)
	return nil
}

// parseAnswers turns "1,3,2" into 1-based option numbers.
func parseAnswers(val string) ([]int, error) {
	parts := strings.Split(val, ",")
	answers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", p, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid answer %d: option numbers start at 1", n)
		}
		answers = append(answers, n)
	}
	return answers, nil
}
