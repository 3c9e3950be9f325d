package stitcher

// renderState is threaded through one Render call.
type renderState struct {
	// holeUsage counts the labels placed at each hole by the current
	// sequence.
	holeUsage []int
	// outerRing is the label room reserved by finished sequences, in
	// multiples of the hole font size.
	outerRing int
	sequence  int
	summaryY  float64
}

func newRenderState(holes int, summaryY float64) *renderState {
	s := &renderState{summaryY: summaryY}
	s.resetHoleUsage(holes)
	return s
}

// resetHoleUsage clears the label counts for a drawing with the given hole
// count.
func (s *renderState) resetHoleUsage(holes int) {
	s.holeUsage = make([]int, holes)
}

// useHole records a label at hole and returns how many labels were already
// there.
func (s *renderState) useHole(hole int) int {
	h := hole % len(s.holeUsage)
	uses := s.holeUsage[h]
	s.holeUsage[h]++
	return uses
}

func (s *renderState) maxUsage() int {
	m := 0
	for _, u := range s.holeUsage {
		if u > m {
			m = u
		}
	}
	return m
}
