// Package chunker splits long test text into pieces that fit one LLM
// request, breaking only at question boundaries so no question is torn
// across two requests.
package chunker

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidChunkSize is returned when an invalid chunk size is specified.
var ErrInvalidChunkSize = errors.New("chunk size must be greater than 0")

// DefaultChunkSize fits comfortably inside a typical model context
// alongside the system prompt and the JSON response.
const DefaultChunkSize = 12000

var questionBoundary = regexp.MustCompile(`^\d+\.\s`)

// Chunk is one LLM-sized slice of a test, holding whole questions.
type Chunk struct {
	// Content is the chunk text.
	Content string
	// Index is the position of this chunk within the test.
	Index int
}

// Split breaks test text into chunks of at most maxChars characters,
// cutting only on lines that start a new question. The header material
// before the first question stays with the first chunk. A single
// question longer than maxChars is emitted as an oversized chunk rather
// than split.
func Split(text string, maxChars int) ([]Chunk, error) {
	if maxChars <= 0 {
		return nil, ErrInvalidChunkSize
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return []Chunk{}, nil
	}

	var chunks []Chunk
	var builder strings.Builder

	flush := func() {
		content := strings.TrimSpace(builder.String())
		if content != "" {
			chunks = append(chunks, Chunk{Content: content, Index: len(chunks)})
		}
		builder.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		atBoundary := questionBoundary.MatchString(strings.TrimSpace(line))
		if atBoundary && builder.Len() > 0 && builder.Len()+len(line) > maxChars {
			flush()
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(line)
	}
	flush()

	return chunks, nil
}
