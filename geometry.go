package stitcher

import (
	"fmt"
	"math"
)

// Point is an X,Y coordinate in pixels, Y growing downward.
type Point struct {
	X, Y float64
}

// Distance returns the straight line distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Shape holds the parameters of the closed curve the holes sit on. K is how
// much the curve pushes in or out; zero is a circle whatever Sides and
// PointsPerSide are.
type Shape struct {
	Holes         int
	K             float64
	Sides         int
	PointsPerSide float64
	CenterX       float64
	CenterY       float64
}

// Geometry places holes on a Shape.
type Geometry struct {
	shape     Shape
	numerator float64
}

// HoleAngle returns the angle of a hole in degrees. Hole 0 is to the right and
// angles grow clockwise.
func HoleAngle(index, holes int) float64 {
	return float64(index) / float64(holes) * 360
}

// NewGeometry checks that the radial scale is defined at every hole of s.
func NewGeometry(s Shape) (*Geometry, error) {
	if s.Holes < 1 {
		return nil, &ConfigurationError{Field: "hole count", Msg: "must be at least 1"}
	}
	if s.Sides < 1 {
		return nil, &ConfigurationError{Field: "side count", Msg: "must be at least 1"}
	}
	if math.Abs(s.K) > 1 {
		return nil, &DomainError{Hole: 0, Value: s.K, Msg: "pointiness must be within [-1, 1]"}
	}

	g := &Geometry{
		shape:     s,
		numerator: math.Cos((2*math.Asin(s.K) + math.Pi*s.PointsPerSide) / float64(2*s.Sides)),
	}

	for i := 0; i < s.Holes; i++ {
		rad := radians(HoleAngle(i, s.Holes))
		arg := s.K * math.Cos(float64(s.Sides)*rad)
		if math.Abs(arg) > 1 {
			return nil, &DomainError{Hole: i, Value: arg, Msg: "arcsine argument outside [-1, 1]"}
		}
		den := g.denominator(rad)
		if math.Abs(den) < 1e-12 {
			return nil, &DomainError{Hole: i, Value: den, Msg: "radial scale diverges"}
		}
		if p := g.numerator / den; math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, &DomainError{Hole: i, Value: p, Msg: fmt.Sprintf("radial scale is %v", p)}
		}
	}

	return g, nil
}

// Center returns the center of the curve.
func (g *Geometry) Center() Point {
	return Point{g.shape.CenterX, g.shape.CenterY}
}

// Angle is HoleAngle for the hole count of g.
func (g *Geometry) Angle(index int) float64 {
	return HoleAngle(index, g.shape.Holes)
}

// Scale returns the radial scale factor p at a hole; 1 on a circle.
func (g *Geometry) Scale(index int) float64 {
	return g.numerator / g.denominator(radians(g.Angle(index)))
}

// HoleToXY places hole index on the curve of the given radius. Indexes past
// the hole count wrap around the curve.
func (g *Geometry) HoleToXY(index int, radius float64) Point {
	rad := radians(g.Angle(index))
	p := g.numerator / g.denominator(rad)
	return Point{
		X: g.shape.CenterX + radius*math.Cos(rad)*p,
		Y: g.shape.CenterY + radius*math.Sin(rad)*p,
	}
}

// Outline returns one point per hole on the curve of the given radius.
func (g *Geometry) Outline(radius float64) []Point {
	pts := make([]Point, g.shape.Holes)
	for i := range pts {
		pts[i] = g.HoleToXY(i, radius)
	}
	return pts
}

func (g *Geometry) denominator(rad float64) float64 {
	s := g.shape
	return math.Cos((2*math.Asin(s.K*math.Cos(float64(s.Sides)*rad)) + math.Pi*s.PointsPerSide) / float64(2*s.Sides))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
