package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/reader"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/textclean"
)

var extractForce bool

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Convert downloaded PDFs into cleaned text files",
	Long: `Extracts text from every *_test.pdf and *_key.pdf under the data
directory and writes cleaned *_test.txt / *_key.txt siblings. Existing
text files are kept unless --force is given.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVarP(&extractForce, "force", "f", false, "re-extract even when the text file already exists")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var pdfs []string
	err = filepath.WalkDir(cfg.DataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".pdf") {
			pdfs = append(pdfs, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %q: %w", cfg.DataDir, err)
	}
	if len(pdfs) == 0 {
		return fmt.Errorf("no PDFs found under %q — run fetch first", cfg.DataDir)
	}

	display.Header("Extracting PDF text")

	var summary display.PipelineSummary
	for i, path := range pdfs {
		display.Step(i+1, len(pdfs), filepath.Base(path))

		out := strings.TrimSuffix(path, ".pdf") + ".txt"
		if !extractForce {
			if _, err := os.Stat(out); err == nil {
				display.StepDetail("already extracted, skipping")
				continue
			}
		}

		text, err := reader.ExtractPDFText(path)
		if err != nil {
			display.StepWarn(err.Error())
			summary.FilesFailed++
			continue
		}

		cleaned := textclean.Clean(text)
		if err := os.WriteFile(out, []byte(cleaned), 0644); err != nil {
			display.StepWarn(err.Error())
			summary.FilesFailed++
			continue
		}
		display.FileCreated(out)
		summary.FilesProcessed++
	}

	display.PrintSummary("📄 Extract", summary)
	return nil
}
