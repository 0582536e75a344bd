// Package reader locates test/key file pairs in the corpus layout
// (data/raw-data/state_<year>/<subject>/) and extracts text from the
// downloaded PDFs.
package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

// ErrNoTests is returned when a corpus directory holds no test files.
var ErrNoTests = errors.New("no test files found")

// TestFile is one discovered source test with its sibling answer key.
type TestFile struct {
	// Path is the *_test.txt file.
	Path string
	// KeyPath is the matching *_key.txt file, empty when none exists.
	KeyPath string
	// Stem is the test filename without the _test.txt suffix.
	Stem string
	// Year is the state_<year> directory name, e.g. "state_2016".
	Year string
	// Subject is the subject directory name.
	Subject string
	// Era is derived from the year in the path.
	Era question.Era
}

// DiscoverTests walks a corpus root and returns every *_test.txt file,
// pairing each with its answer key. Keys are matched by the
// <stem>_key.txt convention first, then by any *_key.txt sibling.
func DiscoverTests(root string) ([]TestFile, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("corpus root %q: %w", root, err)
	}

	var tests []TestFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), "_test.txt") {
			return nil
		}
		tests = append(tests, describe(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus %q: %w", root, err)
	}
	if len(tests) == 0 {
		return nil, ErrNoTests
	}
	return tests, nil
}

// Describe builds a TestFile for a single known test path.
func Describe(path string) TestFile {
	return describe(path)
}

func describe(path string) TestFile {
	dir := filepath.Dir(path)
	stem := strings.TrimSuffix(filepath.Base(path), "_test.txt")

	era, _ := question.EraForPath(path)

	t := TestFile{
		Path:    path,
		Stem:    stem,
		Subject: filepath.Base(dir),
		Year:    filepath.Base(filepath.Dir(dir)),
		Era:     era,
	}
	t.KeyPath = findKey(dir, stem)
	return t
}

// findKey prefers the key named after the test stem and falls back to
// any key file in the same directory.
func findKey(dir, stem string) string {
	exact := filepath.Join(dir, stem+"_key.txt")
	if _, err := os.Stat(exact); err == nil {
		return exact
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*_key.txt"))
	if err != nil || len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// ReadTest returns the test file content.
func (t TestFile) ReadTest() (string, error) {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return "", fmt.Errorf("read test %q: %w", t.Path, err)
	}
	return string(data), nil
}

// ReadKey returns the answer key content, or "" when the test has no
// key file.
func (t TestFile) ReadKey() (string, error) {
	if t.KeyPath == "" {
		return "", nil
	}
	data, err := os.ReadFile(t.KeyPath)
	if err != nil {
		return "", fmt.Errorf("read key %q: %w", t.KeyPath, err)
	}
	return string(data), nil
}
