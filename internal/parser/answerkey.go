package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

var keyEntry = regexp.MustCompile(`(\d+)\.\s*([A-Da-d])`)

// ParseAnswerKey extracts question-number → letter pairs from an answer
// key blob. Entries may appear in any order and any case; letters are
// normalized to uppercase. Later duplicates win, matching how the key
// documents correct themselves.
func ParseAnswerKey(content string) map[int]string {
	answers := make(map[int]string)
	for _, m := range keyEntry.FindAllStringSubmatch(content, -1) {
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		answers[num] = strings.ToUpper(m[2])
	}
	return answers
}

// MergeAnswerKey attaches correct answers to records in place. Records
// whose index is absent from the key keep the UNKNOWN sentinel; their
// indices are returned for diagnostics.
func MergeAnswerKey(records []question.Record, answers map[int]string) []int {
	var unknown []int
	for i := range records {
		if letter, ok := answers[records[i].Index]; ok {
			records[i].Key = letter
		} else {
			records[i].Key = question.KeyUnknown
			unknown = append(unknown, records[i].Index)
		}
	}
	return unknown
}
