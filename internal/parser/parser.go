// Package parser reconstructs multiple-choice question records from
// PDF-extracted test text. The text is walked line by line: a
// classifier tags each line, a state machine accumulates tagged lines
// into records, and a separate pass merges the answer key. The two
// historical layouts (lowercase inline options through 2017, uppercase
// one-per-line options from 2018 on) differ only in which option
// pattern applies and whether one physical line may pack several
// options.
package parser

import (
	"strings"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

// Result is the outcome of parsing one test file.
type Result struct {
	Records []question.Record
	// Dropped holds indices of questions discarded because fewer than
	// four options were assembled.
	Dropped []int
	// UnknownKeys holds indices with no answer-key entry.
	UnknownKeys []int
}

// Parse walks the test text and assembles question records. It is a
// pure function of (text, era); the answer key is merged separately.
func Parse(text string, era question.Era) ([]question.Record, []int) {
	asm := NewAssembler(era)
	for _, line := range strings.Split(text, "\n") {
		asm.Feed(line)
	}
	return asm.Finish()
}

// ParseWithKey parses test text and merges the answer key blob in one
// step. keyText may be empty, in which case every record keeps the
// UNKNOWN sentinel.
func ParseWithKey(text, keyText string, era question.Era) *Result {
	records, dropped := Parse(text, era)

	answers := map[int]string{}
	if keyText != "" {
		answers = ParseAnswerKey(keyText)
	}
	unknown := MergeAnswerKey(records, answers)

	return &Result{
		Records:     records,
		Dropped:     dropped,
		UnknownKeys: unknown,
	}
}
