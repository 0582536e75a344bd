package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// Prefix shapes that carry no instructional content and get peeled off
// the front of instruction lines. PDF-extracted instructions often
// stack several of these ("Part 1) For 46-50 given the stem:").
var instructionPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d{4}\s+FJCL\s+State\s+(Latin\s+)?Forum\s*[–-]?\s*`),
	regexp.MustCompile(`(?i)^FJCL\s+State\s+(Latin\s+)?Forum\s*([–-]\s*[A-Za-z\s,&IVX]+\s*[–-])?\s*`),
	regexp.MustCompile(`(?i)^For\s+questions\s+\d+\s*[–-]\s*\d+\s+(please\s+)?`),
	regexp.MustCompile(`(?i)^For\s+\d+\s*[–-]\s*\d+\s+`),
	regexp.MustCompile(`(?i)^Part\s+([IVX]+|\d+)\s*[\.\):]\s*`),
	regexp.MustCompile(`(?i)^Items\s+\d+\s*[–-]\s*\d+\s*:\s*`),
	regexp.MustCompile(`^[IVX]+[\.:]\s+`),
}

var trailingPunct = regexp.MustCompile(`[.:!?]+\s*$`)

// CleanInstruction normalizes an instruction line: banner and divider
// prefixes are stripped (repeatedly, since they stack), the first word
// is capitalized, newlines are flattened, and any run of trailing
// punctuation becomes exactly one colon. Cleaning is idempotent.
func CleanInstruction(s string) string {
	s = FlattenSpace(s)

	// Bounded fixpoint loop over the prefix set.
	for range [5]struct{}{} {
		before := s
		for _, re := range instructionPrefixes {
			s = strings.TrimSpace(re.ReplaceAllString(s, ""))
		}
		if s == before {
			break
		}
	}

	s = trailingPunct.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + ":"
}
