package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

// LineClass is the category assigned to one line of extracted test text.
type LineClass int

const (
	// ClassNoise marks banners, section names and dividers carrying no
	// question content.
	ClassNoise LineClass = iota
	// ClassInstruction marks a line telling students how to answer the
	// following questions.
	ClassInstruction
	// ClassQuestionStart marks "<n>. ..." lines.
	ClassQuestionStart
	// ClassOptionStart marks "a. ..."/"A. ..." lines, possibly carrying
	// several options packed together.
	ClassOptionStart
	// ClassContinuation marks text belonging to whatever span is open.
	ClassContinuation
)

// OptionFragment is one option carved out of a (possibly packed) option
// line. Letter is always uppercase.
type OptionFragment struct {
	Letter string
	Text   string
}

// Classification is the outcome of classifying a single line.
type Classification struct {
	Class   LineClass
	Index   int              // question number, ClassQuestionStart only
	Rest    string           // text after the marker, or the cleaned instruction line
	Options []OptionFragment // ClassOptionStart only, in source order
}

// Classifier tags lines according to the format era and the assembler's
// current position in the text.
type Classifier struct {
	era question.Era

	optionLine  *regexp.Regexp
	packedSplit *regexp.Regexp
	inlineFirst *regexp.Regexp
}

var (
	questionStart = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

	forumBanner   = regexp.MustCompile(`(?i)^(\d{4}\s+)?(FJCL\s+State\s+(Latin\s+)?Forum|STATE\s+LATIN\s+FORUM)`)
	statesBanner  = regexp.MustCompile(`^[A-Za-z\s,&]+?[-–]?\s*States?\s+\d{4}\s*[-–]?\s*$`)
	trailingYear  = regexp.MustCompile(`^[A-Za-z\s,&]+\d{4}\s*[-–]?\s*$`)
	romanMarker   = regexp.MustCompile(`^[IVX]+[\.\):]?$`)
	romanPrefixed = regexp.MustCompile(`^[IVX]+[\.:]\s*(.+)$`)
	partDivider   = regexp.MustCompile(`^Part\s+([IVX]+|\d+)\s*[\.\):–-]\s*(.*)$`)
	itemsRange    = regexp.MustCompile(`^Items\s+\d+\s*[–-]\s*\d+\s*:\s*(.*)$`)
	notaBene      = regexp.MustCompile(`^N\.B\.`)
	subjectTest   = regexp.MustCompile(`^[A-Za-z\s]+Test$`)

	sentenceEnd = regexp.MustCompile(`[.:!?]\s*$`)
)

// instructionVerbs is the fixed vocabulary that qualifies a line as an
// instruction.
var instructionVerbs = []string{
	"choose", "identify", "select", "complete", "match", "give",
	"answer", "refer", "use", "determine", "items", "for questions",
}

// NewClassifier builds a classifier for the given format era.
func NewClassifier(era question.Era) *Classifier {
	c := &Classifier{era: era}
	if era == question.EraPre2018 {
		c.optionLine = regexp.MustCompile(`^([a-d])\.\s*(.*)$`)
		c.packedSplit = regexp.MustCompile(`\s+([b-d])\.\s+`)
		c.inlineFirst = regexp.MustCompile(`(^|\s)a\.\s`)
	} else {
		c.optionLine = regexp.MustCompile(`^([A-D])\.\s*(.*)$`)
		c.packedSplit = nil
		c.inlineFirst = nil
	}
	return c
}

// splitInlineOptions separates a question-start remainder from options
// packed onto the same physical line ("1. Romulus a. Rome b. Athens
// ..."), another pre-2018 typesetting habit. Post-2018 text keeps
// options on their own lines, so the remainder passes through whole.
func (c *Classifier) splitInlineOptions(rest string) (string, []OptionFragment) {
	if c.inlineFirst == nil {
		return rest, nil
	}
	loc := c.inlineFirst.FindStringIndex(rest)
	if loc == nil {
		return rest, nil
	}
	body := strings.TrimSpace(rest[:loc[0]])
	optPart := strings.TrimSpace(rest[loc[0]:])
	optPart = strings.TrimSpace(strings.TrimPrefix(optPart, "a."))
	return body, c.splitOptions("A", optPart)
}

// Classify tags one trimmed line. spanOpen reports whether a question
// body or option span is currently accumulating. instructionOK reports
// whether the assembler can accept an instruction line: between
// questions and once option D has started, but never while the body or
// options A through C are still incomplete, so question and option
// text containing instructional verbs is not cut short. Marker checks
// run before the instruction heuristic.
func (c *Classifier) Classify(line string, spanOpen, instructionOK bool) Classification {
	line = strings.TrimSpace(line)
	if line == "" {
		return Classification{Class: ClassNoise}
	}

	if m := questionStart.FindStringSubmatch(line); m != nil {
		idx, err := strconv.Atoi(m[1])
		if err == nil && idx > 0 {
			cls := Classification{Class: ClassQuestionStart, Index: idx}
			cls.Rest, cls.Options = c.splitInlineOptions(strings.TrimSpace(m[2]))
			return cls
		}
	}

	if m := c.optionLine.FindStringSubmatch(line); m != nil {
		return Classification{
			Class:   ClassOptionStart,
			Options: c.splitOptions(strings.ToUpper(m[1]), m[2]),
		}
	}

	if cls, ok := c.classifyMarker(line, spanOpen, instructionOK); ok {
		return cls
	}

	if instructionOK && isInstruction(line) {
		return Classification{Class: ClassInstruction, Rest: line}
	}

	return Classification{Class: ClassContinuation, Rest: line}
}

// classifyMarker handles banner, section and divider shapes. Some of
// them can still turn out to be instructions ("Part 2) Choose the...",
// "Items 41-45: Identify the mother of each hero.").
func (c *Classifier) classifyMarker(line string, spanOpen, instructionOK bool) (Classification, bool) {
	if forumBanner.MatchString(line) || statesBanner.MatchString(line) ||
		notaBene.MatchString(line) ||
		subjectTest.MatchString(line) || romanMarker.MatchString(line) {
		return Classification{Class: ClassNoise}, true
	}

	if m := itemsRange.FindStringSubmatch(line); m != nil {
		rest := strings.TrimSpace(m[1])
		if instructionOK && containsInstructionVerb(rest) {
			return Classification{Class: ClassInstruction, Rest: line}, true
		}
		return Classification{Class: ClassNoise}, true
	}

	if m := partDivider.FindStringSubmatch(line); m != nil {
		rest := strings.TrimSpace(m[2])
		if instructionOK && containsInstructionVerb(rest) {
			return Classification{Class: ClassInstruction, Rest: line}, true
		}
		return Classification{Class: ClassNoise}, true
	}

	if m := romanPrefixed.FindStringSubmatch(line); m != nil {
		rest := strings.TrimSpace(m[1])
		if instructionOK && len(strings.Fields(line)) > 3 && containsInstructionVerb(rest) {
			return Classification{Class: ClassInstruction, Rest: line}, true
		}
		if len(strings.Fields(line)) <= 3 {
			return Classification{Class: ClassNoise}, true
		}
	}

	// Bare section names: a single word, or a very short colon-terminated
	// phrase. Once a span is open these are more likely stray answer text
	// from bad extraction, so they fall through to continuation.
	if !spanOpen {
		words := strings.Fields(line)
		if len(words) == 1 {
			return Classification{Class: ClassNoise}, true
		}
		if len(words) <= 2 && strings.HasSuffix(line, ":") {
			return Classification{Class: ClassNoise}, true
		}
		if trailingYear.MatchString(line) {
			return Classification{Class: ClassNoise}, true
		}
	}

	return Classification{}, false
}

// splitOptions carves a (possibly packed) option line into fragments.
// Pre-2018 typesetting routinely packs all four options on one physical
// line; text between markers belongs to the preceding letter.
func (c *Classifier) splitOptions(first, rest string) []OptionFragment {
	if c.packedSplit == nil || !c.packedSplit.MatchString(rest) {
		return []OptionFragment{{Letter: first, Text: strings.TrimSpace(rest)}}
	}

	parts := c.packedSplit.Split(rest, -1)
	letters := c.packedSplit.FindAllStringSubmatch(rest, -1)

	frags := []OptionFragment{{Letter: first, Text: strings.TrimSpace(parts[0])}}
	for i, m := range letters {
		if i+1 < len(parts) {
			frags = append(frags, OptionFragment{
				Letter: strings.ToUpper(m[1]),
				Text:   strings.TrimSpace(parts[i+1]),
			})
		}
	}
	return frags
}

func isInstruction(line string) bool {
	if len(strings.Fields(line)) <= 2 {
		return false
	}
	if !sentenceEnd.MatchString(line) {
		return false
	}
	return containsInstructionVerb(line)
}

func containsInstructionVerb(s string) bool {
	lower := strings.ToLower(s)
	for _, verb := range instructionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}
