package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEraForPath(t *testing.T) {
	tests := []struct {
		path string
		era  Era
		year int
	}{
		{"data/raw-data/state_2016/Mythology/mythology_test.txt", EraPre2018, 2016},
		{"data/raw-data/state_2017/Vocabulary_I/vocab_test.txt", EraPre2018, 2017},
		{"data/raw-data/state_2018/Mythology/mythology_test.txt", EraPost2018, 2018},
		{"data/raw-data/state_2019/History_of_the_Empire", EraPost2018, 2019},
		{"some/other/path.txt", EraPost2018, 0},
	}

	for _, tt := range tests {
		era, year := EraForPath(tt.path)
		assert.Equal(t, tt.era, era, tt.path)
		assert.Equal(t, tt.year, year, tt.path)
	}
}

func TestComplete(t *testing.T) {
	r := Record{Options: map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"}}
	assert.True(t, r.Complete())

	r.Options["D"] = ""
	assert.False(t, r.Complete())

	empty := Record{}
	assert.False(t, empty.Complete())
}
