package stitcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

type SequenceTest struct {
	Description string
	Lengths     []int
	ChordCount  *int
	StartHole   int
	Holes       int
	Chords      []Chord
}

var sequenceTests = []SequenceTest{
	{
		"alternating lengths return to start",
		[]int{7, 1}, nil, 0, 16,
		[]Chord{{0, 7}, {7, 8}, {8, 15}, {15, 16}},
	},
	{
		"alternating lengths with a count",
		[]int{7, 1}, intPtr(3), 0, 16,
		[]Chord{{0, 7}, {7, 8}, {8, 15}},
	},
	{
		"alternating lengths from another hole",
		[]int{7, 1}, intPtr(2), 2, 16,
		[]Chord{{2, 9}, {9, 10}},
	},
	{
		"full turn is a single chord",
		[]int{16}, nil, 0, 16,
		[]Chord{{0, 16}},
	},
	{
		"explicit count",
		[]int{5}, intPtr(3), 0, 10,
		[]Chord{{0, 5}, {5, 10}, {0, 5}},
	},
	{
		"explicit count runs past the natural end",
		[]int{16}, intPtr(2), 0, 16,
		[]Chord{{0, 16}, {0, 16}},
	},
	{
		"zero count draws nothing",
		[]int{7, 1}, intPtr(0), 0, 16,
		nil,
	},
	{
		"start hole wraps",
		[]int{3}, intPtr(2), 18, 16,
		[]Chord{{2, 5}, {5, 8}},
	},
	{
		"to is unwrapped",
		[]int{5}, nil, 1, 4,
		[]Chord{{1, 6}, {2, 7}, {3, 8}, {0, 5}},
	},
}

func TestChords(t *testing.T) {
	for _, test := range sequenceTests {
		chords := Chords(test.Lengths, test.ChordCount, test.StartHole, test.Holes)
		require.Equal(t, test.Chords, chords, test.Description)
	}
}

func TestChordsCap(t *testing.T) {
	// 10007 is prime, so a length of 1 needs 10007 chords to come back.
	chords := Chords([]int{1}, nil, 0, 10007)
	require.Len(t, chords, MaxChords)
	require.Equal(t, Chord{MaxChords - 1, MaxChords}, chords[len(chords)-1])
}

func TestChordIteratorExhausted(t *testing.T) {
	it := NewChordIterator([]int{16}, nil, 0, 16)

	c, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, Chord{0, 16}, c)

	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		require.False(t, ok)
	}
}

func TestChordsContinuity(t *testing.T) {
	holes := 36
	chords := Chords([]int{10, 3, 1}, nil, 5, holes)
	require.NotEmpty(t, chords)
	require.Equal(t, 5, chords[0].From)
	for i := 1; i < len(chords); i++ {
		require.Equal(t, chords[i-1].To%holes, chords[i].From)
	}
}
