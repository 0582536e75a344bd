package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscoverTests(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "state_2016", "Mythology", "mythology_test.txt"), "1. q")
	writeFile(t, filepath.Join(root, "state_2016", "Mythology", "mythology_key.txt"), "1. A")
	writeFile(t, filepath.Join(root, "state_2019", "Vocabulary_I", "vocab_test.txt"), "1. q")

	tests, err := DiscoverTests(root)
	require.NoError(t, err)
	require.Len(t, tests, 2)

	byStem := map[string]TestFile{}
	for _, tf := range tests {
		byStem[tf.Stem] = tf
	}

	myth := byStem["mythology"]
	assert.Equal(t, "Mythology", myth.Subject)
	assert.Equal(t, "state_2016", myth.Year)
	assert.Equal(t, question.EraPre2018, myth.Era)
	assert.NotEmpty(t, myth.KeyPath)

	vocab := byStem["vocab"]
	assert.Equal(t, question.EraPost2018, vocab.Era)
	assert.Empty(t, vocab.KeyPath)
}

func TestDiscoverTestsGenericKeySibling(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "state_2012", "History", "history_test.txt"), "1. q")
	writeFile(t, filepath.Join(root, "state_2012", "History", "answers_key.txt"), "1. B")

	tests, err := DiscoverTests(root)
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Contains(t, tests[0].KeyPath, "answers_key.txt")

	key, err := tests[0].ReadKey()
	require.NoError(t, err)
	assert.Equal(t, "1. B", key)
}

func TestDiscoverTestsEmpty(t *testing.T) {
	_, err := DiscoverTests(t.TempDir())
	assert.ErrorIs(t, err, ErrNoTests)
}

func TestDiscoverTestsMissingRoot(t *testing.T) {
	_, err := DiscoverTests(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
