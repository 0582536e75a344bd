package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download test and answer-key PDFs from the competition site",
	Long: `Scrapes each configured year page for PDF links matching the
configured subjects and downloads them into data/raw-data/state_<year>/.
Failures are logged and the batch continues.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()
	crawler := fetch.NewCrawler(cfg.BaseURL)
	years := cfg.Years()

	display.Header("Fetching test PDFs")

	downloaded, failed := 0, 0
	for i, year := range years {
		yearNum := cfg.FirstYear + i
		display.Step(i+1, len(years), fmt.Sprintf("Scraping %s...", year))

		doc, err := crawler.YearPage(ctx, yearNum)
		if err != nil {
			display.StepWarn(err.Error())
			failed++
			continue
		}

		links := crawler.TestLinks(doc, cfg.Subjects)
		for _, subject := range cfg.Subjects {
			l := links[subject]
			if l.Test == "" {
				display.StepWarn(fmt.Sprintf("%s: no test link found", subject))
				continue
			}

			dir := filepath.Join(cfg.DataDir, year, subject)
			stem := strings.ToLower(subject)

			if err := crawler.Download(ctx, l.Test, filepath.Join(dir, stem+"_test.pdf")); err != nil {
				display.StepWarn(err.Error())
				failed++
			} else {
				downloaded++
				display.StepDetail(fmt.Sprintf("%s test downloaded", subject))
			}

			if l.Key == "" {
				display.StepWarn(fmt.Sprintf("%s: no answer key link found", subject))
				continue
			}
			if err := crawler.Download(ctx, l.Key, filepath.Join(dir, stem+"_key.pdf")); err != nil {
				display.StepWarn(err.Error())
				failed++
			} else {
				downloaded++
			}
		}
	}

	display.PrintSummary("📥 Fetch", display.PipelineSummary{
		FilesProcessed: downloaded,
		FilesFailed:    failed,
	})
	return nil
}
