// Package consolidate merges per-test question documents into one JSON
// file per subject spanning all competition years, re-applying answer
// keys and attaching source provenance along the way.
package consolidate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/parser"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

// DocumentName is the per-test JSON file the parse stage writes into
// each subject directory.
const DocumentName = "questions.json"

// Result summarizes one subject's consolidation.
type Result struct {
	Subject string
	Stats   question.SubjectStats
	// MissingYears lists years with no data for this subject.
	MissingYears []string
}

// Consolidator merges parsed tests under a corpus root into per-subject
// site data files.
type Consolidator struct {
	// DataDir is the corpus root, e.g. data/raw-data.
	DataDir string
	// OutDir receives the consolidated <Subject>.json files.
	OutDir string
}

// Subject consolidates a single subject across the given years and
// writes <subject>.json into OutDir.
func (c *Consolidator) Subject(subject string, years []string) (*Result, error) {
	res := &Result{Subject: subject}
	questions := []question.Record{}

	for _, year := range years {
		dir := c.subjectDir(year, subject)
		if dir == "" {
			res.MissingYears = append(res.MissingYears, year)
			continue
		}

		doc, err := loadDocument(filepath.Join(dir, DocumentName))
		if err != nil {
			if os.IsNotExist(err) {
				res.MissingYears = append(res.MissingYears, year)
				continue
			}
			return nil, err
		}

		era, _ := question.EraForPath(dir)
		answers := loadAnswers(dir)

		for _, q := range doc.Questions {
			q.SourceYear = year
			q.SourceSubject = subject
			q.FormatEra = era
			q.OriginalIndex = q.Index
			if key, ok := answers[q.Index]; ok {
				q.Key = key
			} else if q.Key == "" {
				q.Key = question.KeyUnknown
			}
			q.Index = len(questions) + 1
			questions = append(questions, q)

			res.Stats.TotalQuestions++
			if era == question.EraPre2018 {
				res.Stats.Pre2018Questions++
			} else {
				res.Stats.Post2018Questions++
			}
			if q.Key != question.KeyUnknown {
				res.Stats.QuestionsWithAnswers++
			}
		}
		res.Stats.YearsProcessed++
		res.Stats.FilesProcessed++
	}

	out := question.SubjectDocument{
		Subject:        subject,
		TotalQuestions: len(questions),
		Questions:      questions,
		Metadata:       res.Stats,
	}
	if err := writeJSON(filepath.Join(c.OutDir, subject+".json"), out); err != nil {
		return nil, err
	}
	return res, nil
}

// subjectDir finds the directory for a subject within one year,
// tolerating the naming drift between years (underscores vs spaces,
// case differences).
func (c *Consolidator) subjectDir(year, subject string) string {
	yearDir := filepath.Join(c.DataDir, year)

	exact := filepath.Join(yearDir, subject)
	if isDir(exact) {
		return exact
	}

	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return ""
	}
	want := canonical(subject)
	for _, e := range entries {
		if e.IsDir() && canonical(e.Name()) == want {
			return filepath.Join(yearDir, e.Name())
		}
	}
	return ""
}

func canonical(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(name), " ")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func loadDocument(path string) (*question.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc question.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return &doc, nil
}

// loadAnswers re-reads the answer key sitting next to the parsed
// document, so key fixes land without a full re-parse.
func loadAnswers(dir string) map[int]string {
	matches, err := filepath.Glob(filepath.Join(dir, "*_key.txt"))
	if err != nil || len(matches) == 0 {
		return nil
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		return nil
	}
	return parser.ParseAnswerKey(string(data))
}

// writeJSON writes atomically via a temp file in the destination
// directory, so a crashed run never leaves a truncated site file.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".consolidate-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %q: %w", path, err)
	}
	return nil
}
