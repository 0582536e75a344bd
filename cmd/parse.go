package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/consolidate"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/parser"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/reader"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Reconstruct questions from extracted test text",
	Long: `Walks the data directory for *_test.txt files, reconstructs the
multiple-choice questions from each, merges the sibling answer key, and
writes a questions.json next to every test.`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	tests, err := reader.DiscoverTests(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("discover tests: %w", err)
	}

	display.Header("Parsing tests")

	var summary display.PipelineSummary
	for i, test := range tests {
		display.Step(i+1, len(tests), fmt.Sprintf("%s/%s", test.Year, test.Subject))

		text, err := test.ReadTest()
		if err != nil {
			display.StepWarn(err.Error())
			summary.FilesFailed++
			continue
		}
		keyText, err := test.ReadKey()
		if err != nil {
			display.StepWarn(err.Error())
			keyText = ""
		}
		if test.KeyPath == "" {
			display.StepWarn("no answer key file, keys will be UNKNOWN")
		}

		result := parser.ParseWithKey(text, keyText, test.Era)
		if len(result.Dropped) > 0 {
			display.StepWarn(fmt.Sprintf("dropped %d incomplete question(s): %v", len(result.Dropped), result.Dropped))
		}

		doc := question.Document{
			TestInfo: question.TestInfo{
				Name:           test.Stem,
				Year:           test.Year,
				Subject:        test.Subject,
				TotalQuestions: len(result.Records),
			},
			Questions: result.Records,
		}

		out := filepath.Join(filepath.Dir(test.Path), consolidate.DocumentName)
		if err := writeDocument(out, doc); err != nil {
			display.StepWarn(err.Error())
			summary.FilesFailed++
			continue
		}

		display.StepResult("questions:", len(result.Records))
		summary.FilesProcessed++
		summary.Questions += len(result.Records)
		summary.Dropped += len(result.Dropped)
		summary.MissingKeys += len(result.UnknownKeys)
	}

	display.PrintSummary("🔍 Parse", summary)
	return nil
}

func writeDocument(path string, doc question.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
