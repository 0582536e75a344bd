package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYears(t *testing.T) {
	cfg := &Config{FirstYear: 2017, LastYear: 2019}
	assert.Equal(t, []string{"state_2017", "state_2018", "state_2019"}, cfg.Years())

	empty := &Config{}
	assert.Nil(t, empty.Years())
}

func TestApplyManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subjects.yaml")
	content := "subjects:\n  - Mythology\nfirst_year: 2012\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := &Config{Subjects: DefaultSubjects, FirstYear: 2009, LastYear: 2019}
	require.NoError(t, ApplyManifest(cfg, path))

	assert.Equal(t, []string{"Mythology"}, cfg.Subjects)
	assert.Equal(t, 2012, cfg.FirstYear)
	assert.Equal(t, 2019, cfg.LastYear)
}

func TestApplyManifestMissingFile(t *testing.T) {
	cfg := &Config{Subjects: DefaultSubjects}
	require.NoError(t, ApplyManifest(cfg, filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, DefaultSubjects, cfg.Subjects)
}

func TestValidateSemantic(t *testing.T) {
	assert.ErrorIs(t, ValidateSemantic(nil), ErrNilConfig)

	cfg := &Config{}
	assert.Error(t, ValidateSemantic(cfg))

	cfg.LLM = ProviderConfig{BaseURL: "http://localhost:4000/v1", APIKey: "k", Model: "m"}
	assert.NoError(t, ValidateSemantic(cfg))
}
