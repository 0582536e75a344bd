package reader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrEmptyPDF is returned when no text could be extracted from a PDF.
var ErrEmptyPDF = errors.New("no text extracted from PDF")

// ExtractPDFText extracts plain text from a PDF. pdfcpu is tried
// first; scanned or oddly-encoded files that yield nothing fall back
// to the ledongthuc reader, mirroring the two-extractor arrangement
// the corpus was originally built with.
func ExtractPDFText(path string) (string, error) {
	text, err := extractWithPdfcpu(path)
	if err == nil && text != "" {
		return text, nil
	}

	text, ferr := extractWithLedongthuc(path)
	if ferr == nil && text != "" {
		return text, nil
	}

	if err == nil {
		err = ErrEmptyPDF
	}
	return "", fmt.Errorf("extract PDF text from %q: %w", path, err)
}

func extractWithPdfcpu(path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "jclbuddy-pdf-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ExtractContentFile(path, tmpDir, nil, conf); err != nil {
		return "", fmt.Errorf("extract PDF content: %w", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("read temp dir: %w", err)
	}

	var sb bytes.Buffer
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(tmpDir, entry.Name()))
		if err != nil {
			continue
		}
		sb.Write(data)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractWithLedongthuc(path string) (string, error) {
	f, r, err := ledongthuc.Open(path)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(content)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
