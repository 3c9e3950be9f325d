package stitcher

// InstructionType tells a serializer which kind of primitive it is handling
type InstructionType int

// These are the primitives a Drawing is made of
const (
	RectInstruction InstructionType = iota
	CircleInstruction
	LineInstruction
	TextInstruction
	PolyLineInstruction
)

func (k InstructionType) String() string {
	switch k {
	case RectInstruction:
		return "rect"
	case CircleInstruction:
		return "circle"
	case LineInstruction:
		return "line"
	case TextInstruction:
		return "text"
	case PolyLineInstruction:
		return "polyline"
	}
	return "unknown"
}

// Primitive is one drawing instruction. Coordinates are in pixels.
type Primitive interface {
	Kind() InstructionType
}

// Paint styles a primitive either by stylesheet class or by explicit colors.
// Empty colors are left to the classes.
type Paint struct {
	Class  []string
	Fill   string
	Stroke string
}

// HasClass reports whether c is one of the classes of p.
func (p Paint) HasClass(c string) bool {
	for _, cl := range p.Class {
		if cl == c {
			return true
		}
	}
	return false
}

// Rect is an axis aligned rectangle
type Rect struct {
	X, Y          float64
	Width, Height float64
	Paint
}

// Kind implements Primitive
func (Rect) Kind() InstructionType { return RectInstruction }

// Line is a straight segment, used for chords
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Paint
}

// Kind implements Primitive
func (Line) Kind() InstructionType { return LineInstruction }

// Text is a label anchored at X,Y. Rotate, when set, turns the text about its
// anchor in degrees. FontSize zero leaves the size to the classes.
type Text struct {
	Content  string
	X, Y     float64
	Rotate   *float64
	FontSize float64
	// Href makes the text a link.
	Href string
	Paint
}

// Kind implements Primitive
func (Text) Kind() InstructionType { return TextInstruction }
