package stitcher

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	mt "github.com/rustyoz/Mtransform"
)

// svgPrecision is the number of SVG user units per pixel. svgo writes integer
// coordinates, so this keeps one decimal of a pixel.
const svgPrecision = 10

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// prologWriter writes comment in front of the root element, after the XML
// declaration.
type prologWriter struct {
	w       io.Writer
	comment string
	done    bool
}

func (pw *prologWriter) Write(p []byte) (int, error) {
	i := bytes.Index(p, []byte("<svg"))
	if pw.done || i < 0 {
		return pw.w.Write(p)
	}
	pw.done = true
	n, err := pw.w.Write(p[:i])
	if err != nil {
		return n, err
	}
	if _, err := io.WriteString(pw.w, pw.comment); err != nil {
		return n, err
	}
	m, err := pw.w.Write(p[i:])
	return n + m, err
}

type svgEncoder struct {
	canvas    *svg.SVG
	transform mt.Transform
	theme     Theme
	layout    Layout
}

// WriteSVG serializes d as an SVG document. The outer image size is the
// drawing size times layout.OutputScale.
func WriteSVG(w io.Writer, d *Drawing, theme Theme, layout Layout, credit Credit) error {
	ew := &errWriter{w: w}
	pw := &prologWriter{w: ew, done: credit.Name == ""}
	if credit.Name != "" {
		pw.comment = fmt.Sprintf("<!--\nMade with %s\n%s\n-->\n", credit.Name, credit.URL)
	}
	e := &svgEncoder{
		canvas:    svg.New(pw),
		transform: mt.Identity(),
		theme:     theme,
		layout:    layout,
	}
	e.transform.Scale(svgPrecision, svgPrecision)

	e.canvas.Start(round(d.Width*layout.OutputScale), round(d.Height*layout.OutputScale),
		fmt.Sprintf(`viewBox="0 0 %d %d"`, e.length(d.Width), e.length(d.Height)))
	e.canvas.Style("text/css", e.stylesheet())

	for _, p := range d.Primitives {
		e.encode(p)
	}

	e.canvas.End()
	return ew.err
}

func (e *svgEncoder) stylesheet() string {
	var b strings.Builder
	fmt.Fprintf(&b, ".hole { fill: %s; stroke: %s; stroke-width: %d; }\n",
		e.theme.HoleFill, e.theme.HoleStroke, e.length(1))
	fmt.Fprintf(&b, ".index { font-size: %dpx; text-anchor: middle; }\n", e.length(e.layout.HoleFontSize))
	fmt.Fprintf(&b, ".front { stroke: %s; stroke-width: %d; }\n", e.theme.ChordFrontColor, e.length(e.layout.ChordWidth))
	fmt.Fprintf(&b, ".back { stroke: %s; stroke-width: %d; }\n", e.theme.ChordBackColor, e.length(e.layout.ChordWidth))
	fmt.Fprintf(&b, ".summary { font-size: %dpx; }\n", e.length(e.layout.SummaryFontSize))
	for i, c := range e.theme.SequenceColors {
		fmt.Fprintf(&b, ".seq%d { fill: %s; }\n", i, c)
	}
	return b.String()
}

func (e *svgEncoder) encode(p Primitive) {
	switch p := p.(type) {
	case Rect:
		x, y := e.point(Point{p.X, p.Y})
		e.canvas.Rect(x, y, e.length(p.Width), e.length(p.Height), e.attrs(p.Paint)...)
	case Circle:
		x, y := e.point(Point{p.CX, p.CY})
		e.canvas.Circle(x, y, e.length(p.Radius), e.attrs(p.Paint)...)
	case Line:
		x1, y1 := e.point(Point{p.X1, p.Y1})
		x2, y2 := e.point(Point{p.X2, p.Y2})
		e.canvas.Line(x1, y1, x2, y2, e.attrs(p.Paint)...)
	case Text:
		x, y := e.point(Point{p.X, p.Y})
		attrs := e.attrs(p.Paint)
		if p.FontSize > 0 {
			attrs = append(attrs, fmt.Sprintf(`font-size="%d"`, e.length(p.FontSize)))
		}
		if p.Rotate != nil {
			attrs = append(attrs, fmt.Sprintf(`transform="rotate(%.1f %d %d)"`, *p.Rotate, x, y))
		}
		if p.Href != "" {
			e.canvas.Link(p.Href, p.Content)
			e.canvas.Text(x, y, p.Content, attrs...)
			e.canvas.LinkEnd()
			return
		}
		e.canvas.Text(x, y, p.Content, attrs...)
	case PolyLine:
		xs := make([]int, len(p.Points))
		ys := make([]int, len(p.Points))
		for i, pt := range p.Points {
			xs[i], ys[i] = e.point(pt)
		}
		e.canvas.Polygon(xs, ys, e.attrs(p.Paint)...)
	}
}

func (e *svgEncoder) attrs(p Paint) []string {
	var res []string
	if len(p.Class) > 0 {
		res = append(res, fmt.Sprintf(`class="%s"`, strings.Join(p.Class, " ")))
	}
	if p.Fill != "" {
		res = append(res, fmt.Sprintf(`fill="%s"`, p.Fill))
	}
	if p.Stroke != "" {
		res = append(res, fmt.Sprintf(`stroke="%s"`, p.Stroke))
	}
	return res
}

func (e *svgEncoder) point(p Point) (int, int) {
	x, y := e.transform.Apply(p.X, p.Y)
	return round(x), round(y)
}

func (e *svgEncoder) length(v float64) int {
	l, _ := e.transform.Apply(v, 0)
	return round(l)
}

func round(v float64) int {
	return int(math.Round(v))
}
