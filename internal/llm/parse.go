package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

// parseRecords parses a JSON array of question records from an LLM
// response. It is lenient and tries to extract JSON even if surrounded
// by markdown fences or commentary.
func parseRecords(raw string) ([]question.Record, error) {
	raw = strings.TrimSpace(raw)

	// Strip markdown code fences if present
	if strings.HasPrefix(raw, "```") {
		lines := strings.SplitN(raw, "\n", 2)
		if len(lines) > 1 {
			raw = lines[1]
		}
		raw = strings.TrimSuffix(raw, "```")
		raw = strings.TrimSpace(raw)
	}

	// Find JSON array boundaries
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		// No JSON array found; return empty rather than error
		return []question.Record{}, nil
	}
	raw = raw[start : end+1]

	var records []question.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("unmarshal records JSON: %w", err)
	}

	// Keep only records the heuristic parser would consider emittable.
	filtered := make([]question.Record, 0, len(records))
	for _, rec := range records {
		if rec.Index <= 0 || !rec.Complete() {
			continue
		}
		if rec.Key == "" {
			rec.Key = question.KeyUnknown
		}
		if rec.Instruction == "" {
			rec.Instruction = question.DefaultInstruction
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}
