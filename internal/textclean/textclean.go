// Package textclean normalizes PDF-extracted text before parsing.
// Extraction artifacts are predictable enough for a fixed substitution
// table plus a handful of reshaping passes; anything the table does not
// cover passes through untouched and is handled best-effort downstream.
package textclean

import (
	"regexp"
	"strings"
)

// ligatures maps typographic ligatures that PDF extractors emit for
// common letter pairs back to plain ASCII.
var ligatures = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬀ", "ff",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
)

var (
	pageNumber    = regexp.MustCompile(`(?m)Page \d+`)
	trailingDigit = regexp.MustCompile(`(?m)^\s*\d+\s*$`)

	// Markers must not be preceded by a letter or period, so era
	// abbreviations like "509 B.C." are never mistaken for options.
	optionMarker  = regexp.MustCompile(`(?:^|[^.\pL])([A-D])\.\s+`)
	contaminatedD = regexp.MustCompile(`(^|[^.\pL])([A-D])\.\s+(\d+)\.\s+([A-Z][^\n]*)`)
	optionBreak      = regexp.MustCompile(`([^\n\s])[ \t]+([A-D])\.\s`)
	blankRuns        = regexp.MustCompile(`\n\s*\n\s*\n+`)
	horizontalSpace  = regexp.MustCompile(`[ \t]+`)
	spaceAroundBreak = regexp.MustCompile(` *\n *`)
)

// Clean applies the full normalization pipeline to raw extracted text:
// ligature substitution, page-artifact removal, splitting of physical
// lines that carry several uppercase option markers, separation of
// option values contaminated with the next question's text, and
// whitespace normalization.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = ligatures.Replace(text)
	text = pageNumber.ReplaceAllString(text, "")
	text = trailingDigit.ReplaceAllString(text, "")

	text = splitPackedOptionLines(text)
	text = splitContaminatedOptions(text)

	// A residual single option marker stuck mid-line gets its own line.
	text = optionBreak.ReplaceAllString(text, "$1\n$2. ")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = spaceAroundBreak.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}

// splitPackedOptionLines breaks physical lines holding more than one
// uppercase option ("A. Helle B. Danae C. Io D. Daphne") into one
// option per line, so the line classifier sees post-2018 text in its
// intended shape.
func splitPackedOptionLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		matches := optionMarker.FindAllStringSubmatchIndex(line, -1)
		if len(matches) < 2 {
			out = append(out, line)
			continue
		}

		// Cut at each marker's letter; text before the first marker
		// stays on its own line.
		cuts := make([]int, 0, len(matches))
		for _, m := range matches {
			cuts = append(cuts, m[2])
		}

		if head := strings.TrimSpace(line[:cuts[0]]); head != "" {
			out = append(out, head)
		}
		for i, cut := range cuts {
			end := len(line)
			if i+1 < len(cuts) {
				end = cuts[i+1]
			}
			if segment := strings.TrimSpace(line[cut:end]); segment != "" {
				out = append(out, segment)
			}
		}
	}

	return strings.Join(out, "\n")
}

// splitContaminatedOptions untangles option values that swallowed the
// next question during extraction ("D. 46. The dates..."): the number
// stays as the option value and the question is restored on a fresh
// line.
func splitContaminatedOptions(text string) string {
	return contaminatedD.ReplaceAllString(text, "$1$2. $3\n$3. $4")
}
