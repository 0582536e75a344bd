package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report contaminated option values in parsed questions",
	Long: `Scans every questions.json under the data directory for option
values that still carry PDF-extraction artifacts, such as option D
swallowing the start of the next question.`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	findings, err := lint.Walk(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("lint corpus: %w", err)
	}

	if len(findings) == 0 {
		display.Success("no contaminated options found")
		return nil
	}

	display.Header(fmt.Sprintf("%d contaminated option(s)", len(findings)))
	for _, f := range findings {
		display.Warn(fmt.Sprintf("%s q%d option %s: %s", f.Path, f.Index, f.Letter, f.Reason))
		display.StepDetail(f.Value)
	}
	return fmt.Errorf("%d contaminated option(s) found", len(findings))
}
