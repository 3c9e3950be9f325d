package stitcher

// MaxChords bounds a sequence that never returns to its starting state.
const MaxChords = 10000

// Chord is one stitch. To is not wrapped, so From and To always lie on the
// same trip around the curve; the next chord starts at To modulo the hole
// count.
type Chord struct {
	From int
	To   int
}

// ChordIterator produces the chords of one sequence on demand. It cannot be
// restarted; build a new one for another pass.
type ChordIterator struct {
	lengths []int
	limit   int
	natural bool
	start   int
	holes   int

	hole    int
	step    int
	emitted int
	done    bool
}

// NewChordIterator returns the chords of lengths walked from startHole. With
// a nil chordCount the walk stops just before it would repeat its first step
// from startHole, or after MaxChords. Otherwise exactly *chordCount chords are
// produced; zero produces none.
func NewChordIterator(lengths []int, chordCount *int, startHole, holes int) *ChordIterator {
	it := &ChordIterator{
		lengths: lengths,
		limit:   MaxChords,
		natural: chordCount == nil,
		holes:   holes,
	}
	if !it.natural {
		it.limit = *chordCount
	}
	if holes > 0 {
		it.start = startHole % holes
	}
	it.hole = it.start
	it.done = len(lengths) == 0 || holes < 1
	return it
}

// Next returns the next chord, or false once the sequence has ended.
func (it *ChordIterator) Next() (Chord, bool) {
	if it.done || it.emitted >= it.limit {
		it.done = true
		return Chord{}, false
	}

	length := it.lengths[it.step%len(it.lengths)]
	if it.natural && it.emitted > 0 && length == it.lengths[0] && it.hole == it.start {
		it.done = true
		return Chord{}, false
	}

	c := Chord{From: it.hole, To: it.hole + length}
	it.hole = c.To % it.holes
	it.step++
	it.emitted++
	return c, true
}

// Chords drains a new iterator into a slice.
func Chords(lengths []int, chordCount *int, startHole, holes int) []Chord {
	var res []Chord
	it := NewChordIterator(lengths, chordCount, startHole, holes)
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		res = append(res, c)
	}
	return res
}
