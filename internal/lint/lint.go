// Package lint scans parsed question documents for artifacts the text
// cleanup may have missed, chiefly option values contaminated with the
// start of the next question.
package lint

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

// Finding is one suspicious option value.
type Finding struct {
	Path   string
	Index  int
	Letter string
	Value  string
	Reason string
}

var (
	// "46. The dates of the reign" glued onto an option value.
	trailingQuestion = regexp.MustCompile(`\s\d+\.\s+[A-Z]`)
	// Option value that is nothing but a question number.
	bareNumber = regexp.MustCompile(`^\d+\.?$`)
)

// Document checks every question in a parsed document.
func Document(path string, doc *question.Document) []Finding {
	var findings []Finding
	for _, q := range doc.Questions {
		for _, letter := range question.Letters {
			value := q.Options[letter]
			reason := check(value)
			if reason == "" {
				continue
			}
			findings = append(findings, Finding{
				Path:   path,
				Index:  q.Index,
				Letter: letter,
				Value:  value,
				Reason: reason,
			})
		}
	}
	return findings
}

func check(value string) string {
	switch {
	case trailingQuestion.MatchString(value):
		return "option carries the start of the next question"
	case bareNumber.MatchString(strings.TrimSpace(value)):
		return "option is only a question number"
	default:
		return ""
	}
}

// Walk lints every questions.json under a corpus root.
func Walk(root string) ([]Finding, error) {
	var findings []Finding
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != "questions.json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		var doc question.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decode %q: %w", path, err)
		}
		findings = append(findings, Document(path, &doc)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findings, nil
}
