package consolidate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

func writeDoc(t *testing.T, dir string, doc question.Document) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentName), data, 0644))
}

func record(idx int, body string) question.Record {
	return question.Record{
		Index: idx,
		Body:  body,
		Options: map[string]string{
			"A": "a", "B": "b", "C": "c", "D": "d",
		},
		Key:         question.KeyUnknown,
		Instruction: question.DefaultInstruction,
	}
}

func TestSubjectMergesYears(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "site")

	writeDoc(t, filepath.Join(root, "state_2016", "Mythology"), question.Document{
		Questions: []question.Record{record(1, "Who is Jupiter?")},
	})
	writeDoc(t, filepath.Join(root, "state_2019", "Mythology"), question.Document{
		Questions: []question.Record{record(1, "Who is Juno?"), record(2, "Who is Mars?")},
	})

	keyDir := filepath.Join(root, "state_2019", "Mythology")
	require.NoError(t, os.WriteFile(filepath.Join(keyDir, "mythology_key.txt"), []byte("1. B\n2. D\n"), 0644))

	c := &Consolidator{DataDir: root, OutDir: out}
	res, err := c.Subject("Mythology", []string{"state_2016", "state_2019", "state_2017"})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Stats.TotalQuestions)
	assert.Equal(t, 2, res.Stats.YearsProcessed)
	assert.Equal(t, 1, res.Stats.Pre2018Questions)
	assert.Equal(t, 2, res.Stats.Post2018Questions)
	assert.Equal(t, 2, res.Stats.QuestionsWithAnswers)
	assert.Equal(t, []string{"state_2017"}, res.MissingYears)

	data, err := os.ReadFile(filepath.Join(out, "Mythology.json"))
	require.NoError(t, err)

	var doc question.SubjectDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Questions, 3)
	// Indices are renumbered globally; originals are preserved.
	assert.Equal(t, 1, doc.Questions[0].Index)
	assert.Equal(t, 2, doc.Questions[1].Index)
	assert.Equal(t, 3, doc.Questions[2].Index)
	assert.Equal(t, 2, doc.Questions[2].OriginalIndex)

	assert.Equal(t, "state_2016", doc.Questions[0].SourceYear)
	assert.Equal(t, question.EraPre2018, doc.Questions[0].FormatEra)
	assert.Equal(t, question.KeyUnknown, doc.Questions[0].Key)

	assert.Equal(t, "B", doc.Questions[1].Key)
	assert.Equal(t, "D", doc.Questions[2].Key)
}

func TestSubjectDirNamingDrift(t *testing.T) {
	root := t.TempDir()

	writeDoc(t, filepath.Join(root, "state_2018", "derivatives i"), question.Document{
		Questions: []question.Record{record(1, "unda")},
	})

	c := &Consolidator{DataDir: root, OutDir: filepath.Join(root, "site")}
	res, err := c.Subject("Derivatives_I", []string{"state_2018"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.TotalQuestions)
}

func TestSubjectNoData(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "state_2018"), 0755))

	c := &Consolidator{DataDir: root, OutDir: filepath.Join(root, "site")}
	res, err := c.Subject("Mythology", []string{"state_2018"})
	require.NoError(t, err)
	assert.Zero(t, res.Stats.TotalQuestions)
	assert.Equal(t, []string{"state_2018"}, res.MissingYears)

	// An empty document is still written so the site never 404s.
	_, err = os.Stat(filepath.Join(root, "site", "Mythology.json"))
	assert.NoError(t, err)
}
