package parser

import (
	"fmt"
	"strings"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

type assemblerState int

const (
	stateAwaiting assemblerState = iota
	stateBody
	stateOptionA
	stateOptionB
	stateOptionC
	stateOptionD
)

// Assembler accumulates classified lines into question records. It is a
// single-file, single-pass state machine; instruction state travels
// with the assembler instead of module-level globals so files can be
// processed independently.
type Assembler struct {
	era        question.Era
	classifier *Classifier

	state       assemblerState
	instruction string // persists across questions until replaced
	current     *question.Record
	span        strings.Builder

	records []question.Record
	dropped []int
}

// NewAssembler creates an assembler for one source file.
func NewAssembler(era question.Era) *Assembler {
	return &Assembler{
		era:        era,
		classifier: NewClassifier(era),
	}
}

// Feed processes one line of source text. Instruction detection is
// only permitted between questions and once option D has started; an
// instruction arriving while option D is open terminates the record,
// since the following questions belong to the new instruction's group.
func (a *Assembler) Feed(line string) {
	spanOpen := a.state != stateAwaiting
	instructionOK := a.state == stateAwaiting || a.state == stateOptionD

	cls := a.classifier.Classify(line, spanOpen, instructionOK)

	switch cls.Class {
	case ClassNoise:
		// Ignored, no transition.

	case ClassInstruction:
		if a.state == stateOptionD {
			a.closeRecord()
		}
		a.instruction = CleanInstruction(cls.Rest)

	case ClassQuestionStart:
		a.closeRecord()
		a.startRecord(cls.Index, cls.Rest)
		if len(cls.Options) > 0 {
			a.feedOptions(cls.Options)
		}

	case ClassOptionStart:
		a.feedOptions(cls.Options)

	case ClassContinuation:
		if spanOpen {
			a.appendSpan(cls.Rest)
		}
	}
}

// Finish flushes the open record and returns the emitted records along
// with the indices of records dropped for missing options.
func (a *Assembler) Finish() ([]question.Record, []int) {
	a.closeRecord()
	return a.records, a.dropped
}

func (a *Assembler) startRecord(index int, rest string) {
	instr := a.instruction
	if instr == "" {
		instr = question.DefaultInstruction
	}
	a.current = &question.Record{
		Index:       index,
		Options:     make(map[string]string, 4),
		Key:         question.KeyUnknown,
		Instruction: instr,
	}
	a.state = stateBody
	a.span.Reset()
	if rest != "" {
		a.span.WriteString(rest)
	}
}

// feedOptions applies one or more option fragments from a single
// physical line. Only the next expected letter advances the machine;
// out-of-order or repeated markers are folded back into the open span,
// since upstream PDF extraction frequently duplicates or misorders
// fragments.
func (a *Assembler) feedOptions(frags []OptionFragment) {
	if a.current == nil {
		return
	}
	for _, frag := range frags {
		expected := a.nextLetter()
		if expected != "" && frag.Letter == expected {
			a.closeSpan()
			a.state++
			a.span.Reset()
			if frag.Text != "" {
				a.span.WriteString(frag.Text)
			}
			continue
		}
		// Fold the stray marker back into whatever is open.
		a.appendSpan(frag.Letter + ". " + frag.Text)
	}
}

// nextLetter returns the option letter the machine expects next, or ""
// when no further option can open.
func (a *Assembler) nextLetter() string {
	switch a.state {
	case stateBody:
		return "A"
	case stateOptionA:
		return "B"
	case stateOptionB:
		return "C"
	case stateOptionC:
		return "D"
	default:
		return ""
	}
}

func (a *Assembler) appendSpan(text string) {
	if text == "" {
		return
	}
	if a.span.Len() > 0 {
		a.span.WriteString(" ")
	}
	a.span.WriteString(text)
}

// closeSpan commits the accumulating text to whichever field the
// current state owns.
func (a *Assembler) closeSpan() {
	if a.current == nil {
		return
	}
	text := FlattenSpace(a.span.String())
	switch a.state {
	case stateBody:
		a.current.Body = text
	case stateOptionA:
		a.current.Options["A"] = text
	case stateOptionB:
		a.current.Options["B"] = text
	case stateOptionC:
		a.current.Options["C"] = text
	case stateOptionD:
		a.current.Options["D"] = text
	}
}

// closeRecord finalizes the open record, emitting it when all four
// options are populated and dropping it otherwise.
func (a *Assembler) closeRecord() {
	if a.current == nil {
		a.state = stateAwaiting
		return
	}
	a.closeSpan()

	rec := a.current
	a.current = nil
	a.state = stateAwaiting
	a.span.Reset()

	if rec.Body == "" {
		rec.Body = fmt.Sprintf("Question %d", rec.Index)
	}
	if !rec.Complete() {
		a.dropped = append(a.dropped, rec.Index)
		return
	}
	a.records = append(a.records, *rec)
}

// FlattenSpace replaces embedded newlines with spaces and collapses
// whitespace runs to a single space.
func FlattenSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
