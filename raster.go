package stitcher

import (
	stdcol "image/color"
	"image/draw"
	"image/png"
	"io"

	g2d "github.com/jphsd/graphics2d"
	"github.com/jphsd/graphics2d/color"
	"github.com/jphsd/graphics2d/image"
)

type rasterizer struct {
	img    draw.Image
	scale  float64
	theme  Theme
	layout Layout
}

// WritePNG rasterizes d as a PNG preview at layout.OutputScale. Text is not
// drawn.
func WritePNG(w io.Writer, d *Drawing, theme Theme, layout Layout) error {
	rs := &rasterizer{
		img:    image.NewRGBA(round(d.Width*layout.OutputScale), round(d.Height*layout.OutputScale), color.White),
		scale:  layout.OutputScale,
		theme:  theme,
		layout: layout,
	}
	for _, p := range d.Primitives {
		if err := rs.draw(p); err != nil {
			return err
		}
	}
	return png.Encode(w, rs.img)
}

func (rs *rasterizer) draw(p Primitive) error {
	var path *g2d.Path
	var paint Paint
	width := 1.0

	switch p := p.(type) {
	case Rect:
		x, y, w, h := p.X*rs.scale, p.Y*rs.scale, p.Width*rs.scale, p.Height*rs.scale
		path = g2d.Polygon([]float64{x, y}, []float64{x + w, y}, []float64{x + w, y + h}, []float64{x, y + h})
		paint = p.Paint
	case Circle:
		path = g2d.Circle(rs.pt(Point{p.CX, p.CY}), p.Radius*rs.scale)
		paint = p.Paint
	case Line:
		path = g2d.Line(rs.pt(Point{p.X1, p.Y1}), rs.pt(Point{p.X2, p.Y2}))
		paint = p.Paint
		width = rs.layout.ChordWidth
	case PolyLine:
		if len(p.Points) < 3 {
			return nil
		}
		pts := make([][]float64, len(p.Points))
		for i, pt := range p.Points {
			pts[i] = rs.pt(pt)
		}
		path = g2d.Polygon(pts...)
		paint = p.Paint
	default:
		return nil
	}

	fill, stroke, err := rs.colors(paint)
	if err != nil {
		return err
	}
	if _, ok := p.(Line); ok {
		fill = nil
	}

	shape := g2d.NewShape(path)
	if fill != nil {
		g2d.FillShape(rs.img, shape, g2d.NewPen(fill, 1))
	}
	if stroke != nil {
		g2d.DrawShape(rs.img, shape, g2d.NewPen(stroke, width*rs.scale))
	}
	return nil
}

// colors resolves explicit colors first, then the stylesheet classes.
func (rs *rasterizer) colors(p Paint) (fill, stroke stdcol.Color, err error) {
	fillName, strokeName := p.Fill, p.Stroke
	switch {
	case p.HasClass("hole"):
		fillName, strokeName = pick(fillName, rs.theme.HoleFill), pick(strokeName, rs.theme.HoleStroke)
	case p.HasClass("front"):
		strokeName = pick(strokeName, rs.theme.ChordFrontColor)
	case p.HasClass("back"):
		strokeName = pick(strokeName, rs.theme.ChordBackColor)
	}

	if fillName != "" {
		if fill, err = ParseColor(fillName); err != nil {
			return nil, nil, err
		}
	}
	if strokeName != "" {
		if stroke, err = ParseColor(strokeName); err != nil {
			return nil, nil, err
		}
	}
	return fill, stroke, nil
}

func (rs *rasterizer) pt(p Point) []float64 {
	return []float64{p.X * rs.scale, p.Y * rs.scale}
}

func pick(explicit, class string) string {
	if explicit != "" {
		return explicit
	}
	return class
}
