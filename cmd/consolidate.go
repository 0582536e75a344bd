package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/consolidate"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Merge per-test questions into per-subject site data",
	Long: `Collects every parsed questions.json across the configured years
and writes one <Subject>.json per subject into the site data directory,
renumbering questions and attaching source year and format metadata.`,
	RunE: runConsolidate,
}

func init() {
	rootCmd.AddCommand(consolidateCmd)
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c := &consolidate.Consolidator{
		DataDir: cfg.DataDir,
		OutDir:  cfg.SiteDataDir,
	}
	years := cfg.Years()

	display.Header("Consolidating subjects")

	var summary display.PipelineSummary
	for i, subject := range cfg.Subjects {
		display.Step(i+1, len(cfg.Subjects), subject)

		res, err := c.Subject(subject, years)
		if err != nil {
			display.StepWarn(err.Error())
			summary.FilesFailed++
			continue
		}

		if len(res.MissingYears) > 0 {
			display.StepWarn(fmt.Sprintf("no data for %v", res.MissingYears))
		}
		display.StepResult("questions:", res.Stats.TotalQuestions)
		display.StepDetail(fmt.Sprintf("%d with answers, %d pre-2018, %d post-2018",
			res.Stats.QuestionsWithAnswers, res.Stats.Pre2018Questions, res.Stats.Post2018Questions))

		summary.FilesProcessed++
		summary.Questions += res.Stats.TotalQuestions
		summary.MissingKeys += res.Stats.TotalQuestions - res.Stats.QuestionsWithAnswers
	}

	display.PrintSummary("📦 Consolidate", summary)
	return nil
}
