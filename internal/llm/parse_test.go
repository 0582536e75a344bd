package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

const sampleResponse = `[
  {
    "question_index": 1,
    "question_body": "Which goddess sprang from the head of Jupiter?",
    "question_options": {"A": "Minerva", "B": "Diana", "C": "Venus", "D": "Ceres"},
    "question_instruction": "Choose the best answer:"
  }
]`

func TestParseRecords(t *testing.T) {
	records, err := parseRecords(sampleResponse)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 1, rec.Index)
	assert.Equal(t, "Minerva", rec.Options["A"])
	assert.Equal(t, question.KeyUnknown, rec.Key)
}

func TestParseRecordsMarkdownFence(t *testing.T) {
	records, err := parseRecords("```json\n" + sampleResponse + "\n```")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParseRecordsNoArray(t *testing.T) {
	records, err := parseRecords("I could not find any questions.")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseRecordsFiltersIncomplete(t *testing.T) {
	raw := `[
  {"question_index": 1, "question_body": "b", "question_options": {"A": "x", "B": "y", "C": "z", "D": "w"}, "question_instruction": "i:"},
  {"question_index": 2, "question_body": "b", "question_options": {"A": "x"}, "question_instruction": "i:"},
  {"question_index": 0, "question_body": "b", "question_options": {"A": "x", "B": "y", "C": "z", "D": "w"}, "question_instruction": "i:"}
]`
	records, err := parseRecords(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Index)
}
