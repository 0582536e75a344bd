package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/config"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/consolidate"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/llm"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/parser"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/reader"
)

var semanticCmd = &cobra.Command{
	Use:   "semantic <test.txt> [test.txt...]",
	Short: "Re-parse stubborn test files with an LLM",
	Long: `Sends the full text of each given test file to the configured LLM
and asks it to extract the questions directly. Meant for the handful of
files whose layout defeats the heuristic parser; the answer key is
still merged from the sibling key file.

Requires llm.base_url, llm.api_key and llm.model in the config (or the
JCLBUDDY_LLM_* environment variables).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSemantic,
}

func init() {
	rootCmd.AddCommand(semanticCmd)
}

func runSemantic(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.ValidateSemantic(cfg); err != nil {
		return err
	}

	client, err := llm.NewClient(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("create LLM client: %w", err)
	}

	ctx := context.Background()
	display.Header("Semantic parsing")

	var summary display.PipelineSummary
	for i, path := range args {
		test := reader.Describe(path)
		display.Step(i+1, len(args), fmt.Sprintf("%s/%s", test.Year, test.Subject))

		text, err := test.ReadTest()
		if err != nil {
			display.StepWarn(err.Error())
			summary.FilesFailed++
			continue
		}

		records, err := client.ParseTest(ctx, text)
		if err != nil {
			display.StepWarn(err.Error())
			summary.FilesFailed++
			continue
		}
		if len(records) == 0 {
			display.StepWarn("model returned no questions")
			summary.FilesFailed++
			continue
		}

		keyText, err := test.ReadKey()
		if err == nil && keyText != "" {
			unknown := parser.MergeAnswerKey(records, parser.ParseAnswerKey(keyText))
			summary.MissingKeys += len(unknown)
		}

		doc := question.Document{
			TestInfo: question.TestInfo{
				Name:           test.Stem,
				Year:           test.Year,
				Subject:        test.Subject,
				TotalQuestions: len(records),
			},
			Questions: records,
		}

		out := filepath.Join(filepath.Dir(test.Path), consolidate.DocumentName)
		if err := writeDocument(out, doc); err != nil {
			display.StepWarn(err.Error())
			summary.FilesFailed++
			continue
		}

		display.StepResult("questions:", len(records))
		summary.FilesProcessed++
		summary.Questions += len(records)
	}

	display.PrintSummary("🧠 Semantic", summary)
	return nil
}
