package stitcher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	gl "github.com/rustyoz/genericlexer"
)

var (
	intPat         = regexp.MustCompile(`^\d+$`)
	floatPat       = regexp.MustCompile(`^\d+(\.\d*)?$`)
	signedFloatPat = regexp.MustCompile(`^-?\d+(\.\d*)?$`)
)

type tokenKind int

const (
	tagToken tokenKind = iota
	numberToken
	commaToken
	endToken
	badToken
)

type token struct {
	kind  tokenKind
	value string
	pos   int
}

// segment is the text between two ';' separators.
type segment struct {
	text   string
	offset int
}

// drainIdle is how long a drained lexer may stay silent before it is
// considered finished.
const drainIdle = 100 * time.Millisecond

type commandParser struct {
	lex     *gl.Lexer
	segment segment
	cursor  int
	peeked  *token
	// end is the token returned once the lexer has reached the end.
	end   *token
	drain func()
}

// globalClause parses the value of one global option. Globals must appear in
// the order of globalClauses.
type globalClause struct {
	tag   string
	parse func(cp *commandParser, cmd *ParsedCommand, tag token) error
}

var globalClauses = []globalClause{
	{"W", func(cp *commandParser, cmd *ParsedCommand, tag token) (err error) {
		cmd.Width, err = cp.parseFloat(tag, floatPat)
		return
	}},
	{"H", func(cp *commandParser, cmd *ParsedCommand, tag token) (err error) {
		cmd.Holes, err = cp.parseInt(tag)
		return
	}},
	{"OC", func(cp *commandParser, cmd *ParsedCommand, tag token) (err error) {
		cmd.CircleRadius, err = cp.parseFloat(tag, floatPat)
		return
	}},
	{"K", func(cp *commandParser, cmd *ParsedCommand, tag token) (err error) {
		cmd.K, err = cp.parseFloat(tag, signedFloatPat)
		return
	}},
	{"N", func(cp *commandParser, cmd *ParsedCommand, tag token) (err error) {
		cmd.Sides, err = cp.parseInt(tag)
		return
	}},
	{"M", func(cp *commandParser, cmd *ParsedCommand, tag token) (err error) {
		cmd.PointsPerSide, err = cp.parseFloat(tag, floatPat)
		return
	}},
	{"IC", func(cp *commandParser, cmd *ParsedCommand, tag token) (err error) {
		cmd.InnerRadius, err = cp.parseFloat(tag, floatPat)
		return
	}},
}

// Parse reads a command string:
//
//	globals   = ["W" float] ["H" int] ["OC" float] ["K" float] ["N" int] ["M" float] ["IC" float]
//	sequence  = "L" int ("," int)* ["S" int] ["C" int]
//	grammar   = globals (sequence (";" sequence)*)?
//
// Omitted globals take their defaults in unit. Malformed input returns a
// *SyntaxError; values are not range checked here, see Validate.
func Parse(input string, unit Unit) (*ParsedCommand, error) {
	cmd := NewCommand(unit)
	cmd.Source = input

	segs := splitSequences(input)
	for i, seg := range segs {
		done, err := parseSegment(cmd, seg, i == 0, len(segs) == 1)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	return cmd, nil
}

// parseSegment parses the text between two ';'. The first segment carries
// the globals; done reports a command made of globals only.
func parseSegment(cmd *ParsedCommand, seg segment, first, only bool) (done bool, err error) {
	cp := newCommandParser(seg)
	defer cp.drain()

	if first {
		if err := cp.parseGlobals(cmd); err != nil {
			return false, err
		}
		if only && cp.peek().kind == endToken {
			return true, nil
		}
	}

	seq, err := cp.parseSequence()
	if err != nil {
		return false, err
	}
	if err := cp.expectEnd(); err != nil {
		return false, err
	}
	cmd.Sequences = append(cmd.Sequences, seq)
	return false, nil
}

func splitSequences(input string) []segment {
	var segs []segment
	start := 0
	for i := 0; i < len(input); i++ {
		if input[i] == ';' {
			segs = append(segs, segment{input[start:i], start})
			start = i + 1
		}
	}
	return append(segs, segment{input[start:], start})
}

func newCommandParser(seg segment) *commandParser {
	l, items := gl.Lex("command", seg.text)
	cp := &commandParser{lex: l, segment: seg}
	// The lexer goroutine blocks on its sends until someone reads them,
	// including the items left after the parser stops.
	cp.drain = func() {
		go func() {
			for {
				select {
				case _, ok := <-items:
					if !ok {
						return
					}
				case <-time.After(drainIdle):
					return
				}
			}
		}()
	}
	return cp
}

func (cp *commandParser) parseGlobals(cmd *ParsedCommand) error {
	next := 0
	for {
		t := cp.peek()
		if t.kind != tagToken {
			return nil
		}
		j := clauseIndex(t.value)
		if j < 0 {
			// Not a global, the sequence parser reports it.
			return nil
		}
		if j < next {
			return cp.syntaxError(t, "option repeated or out of order, globals go in the order W H OC K N M IC")
		}

		cp.next()
		if err := globalClauses[j].parse(cp, cmd, t); err != nil {
			return err
		}
		next = j + 1
	}
}

func clauseIndex(tag string) int {
	for i, c := range globalClauses {
		if c.tag == tag {
			return i
		}
	}
	return -1
}

func (cp *commandParser) parseSequence() (SequenceSpec, error) {
	var seq SequenceSpec

	t := cp.next()
	switch {
	case t.kind == tagToken && t.value == "L":
	case t.kind == tagToken && clauseIndex(t.value) < 0 && t.value != "S" && t.value != "C":
		return seq, cp.syntaxError(t, "unknown option")
	default:
		return seq, cp.syntaxError(t, "expected L to start a sequence")
	}

	for {
		n, err := cp.parseInt(t)
		if err != nil {
			return seq, err
		}
		seq.Lengths = append(seq.Lengths, n)
		if cp.peek().kind != commaToken {
			break
		}
		cp.next()
	}

	if s := cp.peek(); s.kind == tagToken && s.value == "S" {
		cp.next()
		n, err := cp.parseInt(s)
		if err != nil {
			return seq, err
		}
		seq.StartHole = n
	}

	if c := cp.peek(); c.kind == tagToken && c.value == "C" {
		cp.next()
		n, err := cp.parseInt(c)
		if err != nil {
			return seq, err
		}
		seq.ChordCount = &n
	}

	return seq, nil
}

func (cp *commandParser) expectEnd() error {
	t := cp.next()
	if t.kind != endToken {
		return cp.syntaxError(t, "unexpected input")
	}
	return nil
}

func (cp *commandParser) parseInt(tag token) (int, error) {
	t := cp.next()
	if t.kind != numberToken || !intPat.MatchString(t.value) {
		return 0, cp.syntaxError(t, fmt.Sprintf("%s expects a non-negative integer", tag.value))
	}
	n, err := strconv.Atoi(t.value)
	if err != nil {
		return 0, cp.syntaxError(t, fmt.Sprintf("%s value out of range", tag.value))
	}
	return n, nil
}

func (cp *commandParser) parseFloat(tag token, pat *regexp.Regexp) (float64, error) {
	t := cp.next()
	if t.kind != numberToken || !pat.MatchString(t.value) {
		return 0, cp.syntaxError(t, fmt.Sprintf("%s expects a number", tag.value))
	}
	v, err := strconv.ParseFloat(t.value, 64)
	if err != nil {
		return 0, cp.syntaxError(t, fmt.Sprintf("%s value out of range", tag.value))
	}
	return v, nil
}

func (cp *commandParser) peek() token {
	if cp.peeked == nil {
		t := cp.readToken()
		cp.peeked = &t
	}
	return *cp.peeked
}

func (cp *commandParser) next() token {
	t := cp.peek()
	cp.peeked = nil
	return t
}

func (cp *commandParser) readToken() token {
	if cp.end != nil {
		return *cp.end
	}
	cp.lex.ConsumeWhiteSpace()
	i := cp.lex.NextItem()

	switch {
	case i.Type == gl.ItemEOS:
		// The lexer also stops at characters it has no rule for, so the
		// end of items is not always the end of the text.
		t := cp.rest()
		cp.end = &t
		return t
	case i.Type == gl.ItemError:
		return token{kind: badToken, value: i.Value, pos: cp.segment.offset + cp.cursor}
	case i.Type == gl.ItemLetter:
		t := token{kind: tagToken, value: i.Value, pos: cp.locate(i.Value)}
		// Multi letter tags may arrive one letter at a time.
		for cp.lex.PeekItem().Type == gl.ItemLetter {
			n := cp.lex.NextItem()
			cp.locate(n.Value)
			t.value += n.Value
		}
		return t
	case i.Type == gl.ItemNumber:
		return token{kind: numberToken, value: i.Value, pos: cp.locate(i.Value)}
	case i.Value == ",":
		return token{kind: commaToken, value: i.Value, pos: cp.locate(i.Value)}
	default:
		return token{kind: badToken, value: i.Value, pos: cp.locate(i.Value)}
	}
}

// rest is the end token if only whitespace is left after the last located
// token, and a bad token for the first leftover word otherwise.
func (cp *commandParser) rest() token {
	text := cp.segment.text
	left := strings.TrimLeft(text[cp.cursor:], " \t\r\n")
	if left == "" {
		return token{kind: endToken, pos: cp.segment.offset + len(text)}
	}
	return token{
		kind:  badToken,
		value: strings.Fields(left)[0],
		pos:   cp.segment.offset + len(text) - len(left),
	}
}

// locate returns the input offset of v, searching from the end of the last
// located token.
func (cp *commandParser) locate(v string) int {
	i := strings.Index(cp.segment.text[cp.cursor:], v)
	if v == "" || i < 0 {
		return cp.segment.offset + cp.cursor
	}
	pos := cp.cursor + i
	cp.cursor = pos + len(v)
	return cp.segment.offset + pos
}

func (cp *commandParser) syntaxError(t token, msg string) error {
	return &SyntaxError{Pos: t.pos, Token: t.value, Msg: msg}
}
