package stitcher

import (
	"fmt"
	"math"
	"strconv"
)

// Layout holds the pixel sizes of a drawing.
type Layout struct {
	// OutputScale multiplies the drawing size for the outer image size.
	OutputScale       float64
	HoleRadius        float64
	ChordWidth        float64
	HoleFontSize      float64
	LabelGap          float64
	SummaryFontSize   float64
	SummaryX          float64
	SummaryY          float64
	InstructionsX     float64
	InstructionsInset float64
	CreditFontSize    float64
	CreditInset       float64
	CreditY           float64
}

// DefaultLayout returns the stock sizes.
func DefaultLayout() Layout {
	return Layout{
		OutputScale:       2,
		HoleRadius:        2,
		ChordWidth:        1,
		HoleFontSize:      8,
		LabelGap:          1,
		SummaryFontSize:   12,
		SummaryX:          10,
		SummaryY:          15,
		InstructionsX:     10,
		InstructionsInset: 5,
		CreditFontSize:    10,
		CreditInset:       10,
		CreditY:           5,
	}
}

// Credit names the software in the drawing. An empty Name leaves it out.
type Credit struct {
	Name string
	URL  string
}

// Drawing is the output of Render.
type Drawing struct {
	Unit       Unit
	Width      float64
	Height     float64
	Primitives []Primitive
	Sequences  []SequenceSummary
}

// SequenceSummary describes one rendered sequence.
type SequenceSummary struct {
	Lengths []int
	Chords  int
	// Length is the total chord length in pixels.
	Length float64
	// PhysicalLength is Length in the drawing unit, rounded up.
	PhysicalLength int
}

// Renderer turns parsed commands into drawings.
type Renderer struct {
	theme  Theme
	layout Layout
	credit Credit
}

// NewRenderer returns a Renderer drawing with the given theme, sizes and
// credit line.
func NewRenderer(theme Theme, layout Layout, credit Credit) *Renderer {
	return &Renderer{theme: theme, layout: layout, credit: credit}
}

// drawer holds the state of one Render call.
type drawer struct {
	r       *Renderer
	cmd     *ParsedCommand
	geo     *Geometry
	circleR float64
	state   *renderState
	drawing *Drawing
}

// Render lays out cmd. Either the whole drawing is returned or an error
// and no drawing.
func (r *Renderer) Render(cmd *ParsedCommand) (*Drawing, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if len(r.theme.SequenceColors) == 0 {
		return nil, &ConfigurationError{Field: "theme sequence_colors", Msg: "needs at least one color"}
	}

	size := cmd.Unit.ToPixels(cmd.Width)
	geo, err := NewGeometry(Shape{
		Holes:         cmd.Holes,
		K:             cmd.K,
		Sides:         cmd.Sides,
		PointsPerSide: cmd.PointsPerSide,
		CenterX:       size / 2,
		CenterY:       size / 2,
	})
	if err != nil {
		return nil, err
	}

	d := &drawer{
		r:       r,
		cmd:     cmd,
		geo:     geo,
		circleR: cmd.Unit.ToPixels(cmd.CircleRadius),
		state:   newRenderState(cmd.Holes, r.layout.SummaryY),
		drawing: &Drawing{Unit: cmd.Unit, Width: size, Height: size},
	}

	d.background()
	for _, seq := range cmd.Sequences {
		d.sequence(seq)
	}

	return d.drawing, nil
}

func (d *drawer) emit(p Primitive) {
	d.drawing.Primitives = append(d.drawing.Primitives, p)
}

func (d *drawer) background() {
	theme, layout := d.r.theme, d.r.layout
	size := d.drawing.Width

	d.emit(Rect{Width: size, Height: d.drawing.Height, Paint: Paint{Fill: theme.CardboardColor}})

	c := d.geo.Center()
	d.emit(Circle{
		CX:     c.X,
		CY:     c.Y,
		Radius: d.cmd.Unit.ToPixels(d.cmd.InnerRadius),
		Paint:  Paint{Fill: theme.EmptyCircleFill, Stroke: theme.EmptyCircleStroke},
	})

	for _, p := range d.geo.Outline(d.circleR) {
		d.emit(Circle{CX: p.X, CY: p.Y, Radius: layout.HoleRadius, Paint: Paint{Class: []string{"hole"}}})
	}

	if d.r.credit.Name != "" {
		rot := 90.0
		d.emit(Text{
			Content:  d.r.credit.Name,
			X:        size - layout.CreditInset,
			Y:        layout.CreditY,
			Rotate:   &rot,
			FontSize: layout.CreditFontSize,
			Href:     d.r.credit.URL,
			Paint:    Paint{Fill: theme.NameColor},
		})
	}

	d.emit(Text{
		Content: "Instructions: " + d.cmd.Source,
		X:       layout.InstructionsX,
		Y:       d.drawing.Height - layout.InstructionsInset,
		Paint:   Paint{Class: []string{"summary"}},
	})
}

func (d *drawer) sequence(seq SequenceSpec) {
	class := d.r.theme.SequenceClass(d.state.sequence)
	summary := SequenceSummary{Lengths: seq.Lengths}

	front := true
	count := 1
	it := NewChordIterator(seq.Lengths, seq.ChordCount, seq.StartHole, d.cmd.Holes)
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if count == 1 {
			d.label(c.From, count, class)
			count++
		}

		a := d.geo.HoleToXY(c.From, d.circleR)
		b := d.geo.HoleToXY(c.To, d.circleR)
		side := "front"
		if !front {
			side = "back"
		}
		d.emit(Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Paint: Paint{Class: []string{side}}})
		d.label(c.To, count, class)

		summary.Length += a.Distance(b)
		summary.Chords++
		front = !front
		count++
	}

	summary.PhysicalLength = int(math.Ceil(d.cmd.Unit.FromPixels(summary.Length)))
	d.summary(summary, class)

	d.state.outerRing += d.state.maxUsage()
	d.state.resetHoleUsage(d.cmd.Holes)
	d.shell()
	d.state.sequence++

	d.drawing.Sequences = append(d.drawing.Sequences, summary)
}

// label numbers a hole with its place in the sequence. Repeated labels at a
// hole step outward by one font size each.
func (d *drawer) label(hole, count int, class string) {
	layout := d.r.layout
	uses := d.state.useHole(hole)
	offset := layout.HoleFontSize*float64(d.state.outerRing+uses+1) + layout.LabelGap
	p := d.geo.HoleToXY(hole, d.circleR+offset)
	// Turn the text so the bottom faces the center.
	angle := d.geo.Angle(hole%d.cmd.Holes) + 90

	d.emit(Text{
		Content: strconv.Itoa(count),
		X:       p.X,
		Y:       p.Y,
		Rotate:  &angle,
		Paint:   Paint{Class: []string{"index", class}},
	})
}

func (d *drawer) summary(s SequenceSummary, class string) {
	layout := d.r.layout
	lines := []string{
		"Sequence: " + joinInts(s.Lengths, ", "),
		fmt.Sprintf("Length: %d%s", s.PhysicalLength, d.cmd.Unit.Symbol()),
	}
	for _, l := range lines {
		d.emit(Text{
			Content: l,
			X:       layout.SummaryX,
			Y:       d.state.summaryY,
			Paint:   Paint{Class: []string{"summary", class}},
		})
		d.state.summaryY += layout.SummaryFontSize
	}
}

// shell rings the labels of the finished sequences.
func (d *drawer) shell() {
	r := d.circleR + d.r.layout.HoleFontSize*float64(d.state.outerRing+1)
	d.emit(PolyLine{
		Points: d.geo.Outline(r),
		Paint:  Paint{Fill: "none", Stroke: d.r.theme.EmptyCircleStroke},
	})
}
