package lint

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

func TestDocumentFindsContaminatedOption(t *testing.T) {
	doc := &question.Document{
		Questions: []question.Record{
			{
				Index: 45,
				Options: map[string]string{
					"A": "44 BC",
					"B": "31 BC",
					"C": "AD 14",
					"D": "AD 68 46. The dates of the reign",
				},
			},
			{
				Index: 46,
				Options: map[string]string{
					"A": "Augustus", "B": "Tiberius", "C": "Caligula", "D": "Nero",
				},
			},
		},
	}

	findings := Document("state_2019/History/questions.json", doc)
	require.Len(t, findings, 1)
	assert.Equal(t, 45, findings[0].Index)
	assert.Equal(t, "D", findings[0].Letter)
	assert.Contains(t, findings[0].Reason, "next question")
}

func TestDocumentFindsBareNumberOption(t *testing.T) {
	doc := &question.Document{
		Questions: []question.Record{
			{
				Index: 1,
				Options: map[string]string{
					"A": "Jupiter", "B": "Juno", "C": "Mars", "D": "47.",
				},
			},
		},
	}

	findings := Document("q.json", doc)
	require.Len(t, findings, 1)
	assert.Equal(t, "option is only a question number", findings[0].Reason)
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "state_2019", "Mythology")
	require.NoError(t, os.MkdirAll(dir, 0755))

	doc := question.Document{
		Questions: []question.Record{
			{
				Index: 3,
				Options: map[string]string{
					"A": "ok", "B": "ok", "C": "ok", "D": "fine 4. Next one",
				},
			},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.json"), data, 0644))

	findings, err := Walk(root)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Index)
}

func TestWalkCleanCorpus(t *testing.T) {
	findings, err := Walk(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, findings)
}
