package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanLigatures(t *testing.T) {
	assert.Equal(t, "figure flow", Clean("ﬁgure ﬂow"))
}

func TestCleanRemovesPageArtifacts(t *testing.T) {
	got := Clean("1. A question\nPage 3\nA. one")
	assert.NotContains(t, got, "Page 3")
	assert.Contains(t, got, "1. A question")
}

func TestSplitPackedOptionLines(t *testing.T) {
	got := Clean("A. Helle B. Danae C. Io D. Daphne")
	assert.Equal(t, "A. Helle\nB. Danae\nC. Io\nD. Daphne", got)
}

func TestSplitPackedOptionLinesKeepsStem(t *testing.T) {
	got := Clean("Which maiden? A. Helle B. Danae C. Io D. Daphne")
	assert.Equal(t, "Which maiden?\nA. Helle\nB. Danae\nC. Io\nD. Daphne", got)
}

func TestEraAbbreviationsNotTreatedAsMarkers(t *testing.T) {
	got := Clean("A. 509 B.C. B. 390 B.C. C. 264 B.C. D. 146 B.C.")
	assert.Equal(t, "A. 509 B.C.\nB. 390 B.C.\nC. 264 B.C.\nD. 146 B.C.", got)
}

func TestEraAbbreviationInProse(t *testing.T) {
	input := "The Republic began in 509 B.C. according to tradition."
	assert.Equal(t, input, Clean(input))
}

func TestSplitContaminatedOption(t *testing.T) {
	got := Clean("D. 46. The dates of the Second Punic War")
	assert.Contains(t, got, "D. 46")
	assert.Contains(t, got, "46. The dates of the Second Punic War")
}

func TestCleanEmpty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n \n"))
}

func TestCleanIsStableOnCleanInput(t *testing.T) {
	input := "1. A question\nA. one\nB. two\nC. three\nD. four"
	assert.Equal(t, input, Clean(Clean(input)))
}
