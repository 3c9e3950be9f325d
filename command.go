package stitcher

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied by Parse for omitted globals. Lengths are in inches and
// converted to the caller's unit.
const (
	DefaultWidth        = 3.65
	DefaultHoles        = 32
	DefaultCircleRadius = 0.73
	DefaultInnerRadius  = 0.63
	DefaultSides        = 1
)

// Upper bounds checked by Validate. They keep hole indexes well inside int
// whatever the lengths are.
const (
	MaxHoles  = 100000
	MaxLength = 1000000
)

// ParsedCommand is the validated form of a command string. Lengths are in
// Unit.
type ParsedCommand struct {
	Unit          Unit
	Width         float64 // W, width and height of the image
	Holes         int     // H
	CircleRadius  float64 // OC
	InnerRadius   float64 // IC
	K             float64 // pointiness
	Sides         int     // N
	PointsPerSide float64 // M
	Sequences     []SequenceSpec

	// Source is the text the command was parsed from.
	Source string
}

// SequenceSpec is one stitched sequence.
type SequenceSpec struct {
	Lengths   []int
	StartHole int
	// ChordCount is nil when the sequence runs until it repeats.
	ChordCount *int
}

// NewCommand returns a command holding the defaults for unit.
func NewCommand(unit Unit) *ParsedCommand {
	return &ParsedCommand{
		Unit:         unit,
		Width:        unit.FromInches(DefaultWidth),
		Holes:        DefaultHoles,
		CircleRadius: unit.FromInches(DefaultCircleRadius),
		InnerRadius:  unit.FromInches(DefaultInnerRadius),
		Sides:        DefaultSides,
	}
}

// Validate reports values the grammar accepts but a drawing cannot use.
func (c *ParsedCommand) Validate() error {
	switch {
	case c.Holes < 1:
		return &ConfigurationError{Field: "hole count (H)", Msg: "must be at least 1"}
	case c.Holes > MaxHoles:
		return &ConfigurationError{Field: "hole count (H)", Msg: fmt.Sprintf("must be at most %d", MaxHoles)}
	case c.Sides < 1:
		return &ConfigurationError{Field: "side count (N)", Msg: "must be at least 1"}
	case c.Width <= 0:
		return &ConfigurationError{Field: "width (W)", Msg: "must be positive"}
	case c.CircleRadius <= 0:
		return &ConfigurationError{Field: "hole circle radius (OC)", Msg: "must be positive"}
	case c.InnerRadius < 0:
		return &ConfigurationError{Field: "inner circle radius (IC)", Msg: "must not be negative"}
	}
	for i, seq := range c.Sequences {
		if len(seq.Lengths) == 0 {
			return &ConfigurationError{Field: fmt.Sprintf("sequence %d", i+1), Msg: "needs at least one length"}
		}
		for _, l := range seq.Lengths {
			if l < 1 {
				return &ConfigurationError{Field: fmt.Sprintf("sequence %d", i+1), Msg: "lengths must be positive"}
			}
			if l > MaxLength {
				return &ConfigurationError{Field: fmt.Sprintf("sequence %d", i+1), Msg: fmt.Sprintf("lengths must be at most %d", MaxLength)}
			}
		}
		if seq.StartHole < 0 || seq.StartHole > MaxLength {
			return &ConfigurationError{Field: fmt.Sprintf("sequence %d", i+1), Msg: fmt.Sprintf("start hole must be within [0, %d]", MaxLength)}
		}
		if seq.ChordCount != nil && (*seq.ChordCount < 0 || *seq.ChordCount > MaxChords) {
			return &ConfigurationError{Field: fmt.Sprintf("sequence %d", i+1), Msg: fmt.Sprintf("chord count must be within [0, %d]", MaxChords)}
		}
	}
	return nil
}

// String formats the command in the grammar Parse accepts. Every global is
// written out, so parsing the result with the same unit gives back c.
func (c *ParsedCommand) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "W %s H %d OC %s K %s N %d M %s IC %s",
		formatFloat(c.Width), c.Holes, formatFloat(c.CircleRadius), formatFloat(c.K),
		c.Sides, formatFloat(c.PointsPerSide), formatFloat(c.InnerRadius))
	for i, seq := range c.Sequences {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(" ; ")
		}
		b.WriteString(seq.String())
	}
	return b.String()
}

func (s SequenceSpec) String() string {
	var b strings.Builder
	b.WriteString("L ")
	b.WriteString(joinInts(s.Lengths, ","))
	if s.StartHole != 0 {
		fmt.Fprintf(&b, " S %d", s.StartHole)
	}
	if s.ChordCount != nil {
		fmt.Fprintf(&b, " C %d", *s.ChordCount)
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinInts(vs []int, sep string) string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, sep)
}
