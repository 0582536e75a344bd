package question

import (
	"regexp"
	"strconv"
)

// Era identifies which historical typesetting convention a source test
// uses. Tests from 2017 and earlier pack lowercase options inline;
// 2018 onward puts uppercase options one per line.
type Era string

const (
	EraPre2018  Era = "pre_2018"
	EraPost2018 Era = "post_2018"
)

// KeyUnknown is the sentinel used when the answer key has no entry for
// a question.
const KeyUnknown = "UNKNOWN"

// DefaultInstruction is applied to questions that never saw an
// instruction line in context.
const DefaultInstruction = "Choose the response that best answers the question:"

// Letters are the four option letters every emittable question carries.
var Letters = []string{"A", "B", "C", "D"}

// Record is a single parsed multiple-choice question.
type Record struct {
	Index       int               `json:"question_index"`
	Body        string            `json:"question_body"`
	Options     map[string]string `json:"question_options"`
	Key         string            `json:"question_key"`
	Instruction string            `json:"question_instruction"`

	// Provenance, attached during consolidation only.
	SourceYear    string `json:"source_year,omitempty"`
	SourceSubject string `json:"source_subject,omitempty"`
	FormatEra     Era    `json:"format_era,omitempty"`
	OriginalIndex int    `json:"original_question_number,omitempty"`
}

// Complete reports whether all four options are present and non-empty.
func (r *Record) Complete() bool {
	for _, letter := range Letters {
		if r.Options[letter] == "" {
			return false
		}
	}
	return true
}

// TestInfo describes one source test file.
type TestInfo struct {
	Name           string `json:"name"`
	Year           string `json:"year"`
	Subject        string `json:"subject"`
	TotalQuestions int    `json:"total_questions"`
}

// Document is the JSON document written for a single test.
type Document struct {
	TestInfo  TestInfo `json:"test_info"`
	Questions []Record `json:"questions"`
}

// SubjectStats are the aggregate counters attached to a consolidated
// subject file.
type SubjectStats struct {
	TotalQuestions       int `json:"total_questions"`
	YearsProcessed       int `json:"years_processed"`
	FilesProcessed       int `json:"files_processed"`
	Pre2018Questions     int `json:"pre_2018_questions"`
	Post2018Questions    int `json:"post_2018_questions"`
	QuestionsWithAnswers int `json:"questions_with_answers"`
}

// SubjectDocument is one consolidated per-subject JSON file spanning
// all years.
type SubjectDocument struct {
	Subject        string       `json:"subject"`
	TotalQuestions int          `json:"total_questions"`
	Questions      []Record     `json:"questions"`
	Metadata       SubjectStats `json:"metadata"`
}

var yearInPath = regexp.MustCompile(`state_(\d{4})`)

// EraForPath derives the format era from the state_<year> component of
// a source file path. Paths without a recognizable year are assumed to
// be post-2018.
func EraForPath(path string) (Era, int) {
	m := yearInPath.FindStringSubmatch(path)
	if m == nil {
		return EraPost2018, 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return EraPost2018, 0
	}
	if year <= 2017 {
		return EraPre2018, year
	}
	return EraPost2018, year
}
