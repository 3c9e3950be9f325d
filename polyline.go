package stitcher

// PolyLine
// closed set of connected line segments, used for the shells between
// sequences.
type PolyLine struct {
	Points []Point
	Paint
}

// Kind implements Primitive
func (PolyLine) Kind() InstructionType { return PolyLineInstruction }
