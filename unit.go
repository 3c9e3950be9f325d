package stitcher

import mt "github.com/rustyoz/Mtransform"

// Unit is the physical unit the caller measures the template in.
type Unit int

// Physical units accepted by Parse.
const (
	Inch Unit = iota
	Millimeter
)

const (
	// MillimetersPerInch converts inches to millimeters.
	MillimetersPerInch = 25.4
	// PixelsPerInch is fixed by SVG.
	PixelsPerInch = 96
)

// PixelsPer returns how many SVG pixels one unit spans.
func (u Unit) PixelsPer() float64 {
	if u == Millimeter {
		return PixelsPerInch / MillimetersPerInch
	}
	return PixelsPerInch
}

// Symbol is the suffix used when printing lengths.
func (u Unit) Symbol() string {
	if u == Millimeter {
		return "mm"
	}
	return `"`
}

func (u Unit) String() string {
	if u == Millimeter {
		return "mm"
	}
	return "inch"
}

// FromInches converts an inch measurement into u.
func (u Unit) FromInches(v float64) float64 {
	if u == Millimeter {
		return v * MillimetersPerInch
	}
	return v
}

// Transform returns the scale from physical coordinates in u to pixels.
func (u Unit) Transform() mt.Transform {
	t := mt.Identity()
	t.Scale(u.PixelsPer(), u.PixelsPer())
	return t
}

// ToPixels converts a physical length to pixels.
func (u Unit) ToPixels(v float64) float64 {
	t := u.Transform()
	px, _ := t.Apply(v, 0)
	return px
}

// FromPixels converts a pixel length back to u.
func (u Unit) FromPixels(px float64) float64 {
	t := mt.Identity()
	t.Scale(1/u.PixelsPer(), 1/u.PixelsPer())
	v, _ := t.Apply(px, 0)
	return v
}
