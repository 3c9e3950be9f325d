package stitcher

// Circle is a circle primitive; holes, and the punched center.
type Circle struct {
	CX, CY float64
	Radius float64
	Paint
}

// Kind implements Primitive
func (Circle) Kind() InstructionType { return CircleInstruction }
