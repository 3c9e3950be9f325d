package stitcher

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePNG(t *testing.T) {
	cmd, err := Parse("H 24", Inch)
	require.NoError(t, err)
	d, err := NewRenderer(DefaultTheme(), DefaultLayout(), Credit{Name: "x"}).Render(cmd)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, d, DefaultTheme(), DefaultLayout()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 701, img.Bounds().Dx())
	require.Equal(t, 701, img.Bounds().Dy())

	// the punched center is filled with #EBE4D6
	r, g, b, _ := img.At(350, 350).RGBA()
	require.InDelta(t, 0xEB, r>>8, 2)
	require.InDelta(t, 0xE4, g>>8, 2)
	require.InDelta(t, 0xD6, b>>8, 2)
}

func TestWritePNGSequences(t *testing.T) {
	cmd, err := Parse("H 16 L 7,1 ; L 5 C 4", Millimeter)
	require.NoError(t, err)
	d, err := NewRenderer(DefaultTheme(), DefaultLayout(), Credit{}).Render(cmd)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, d, DefaultTheme(), DefaultLayout()))
	_, err = png.Decode(&buf)
	require.NoError(t, err)
}

func TestWritePNGBadColor(t *testing.T) {
	cmd, err := Parse("H 4 L 1", Inch)
	require.NoError(t, err)
	d, err := NewRenderer(DefaultTheme(), DefaultLayout(), Credit{}).Render(cmd)
	require.NoError(t, err)

	theme := DefaultTheme()
	theme.ChordFrontColor = "#12"
	var buf bytes.Buffer
	require.Error(t, WritePNG(&buf, d, theme, DefaultLayout()))
}
