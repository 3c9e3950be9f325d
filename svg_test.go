package stitcher

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/require"
)

type svgElement struct {
	Class string `xml:"class,attr"`
	Fill  string `xml:"fill,attr"`
}

type svgText struct {
	svgElement
	Transform string `xml:"transform,attr"`
	Content   string `xml:",chardata"`
}

type svgDoc struct {
	Width    string       `xml:"width,attr"`
	Height   string       `xml:"height,attr"`
	ViewBox  string       `xml:"viewBox,attr"`
	Style    string       `xml:"style"`
	Rects    []svgElement `xml:"rect"`
	Circles  []svgElement `xml:"circle"`
	Lines    []svgElement `xml:"line"`
	Texts    []svgText    `xml:"text"`
	Polygons []struct {
		Points string `xml:"points,attr"`
		Fill   string `xml:"fill,attr"`
	} `xml:"polygon"`
	Links []struct {
		Href string  `xml:"href,attr"`
		Text svgText `xml:"text"`
	} `xml:"a"`
}

func renderSVG(t *testing.T, input string, credit Credit) string {
	cmd, err := Parse(input, Inch)
	require.NoError(t, err)
	d, err := NewRenderer(DefaultTheme(), DefaultLayout(), credit).Render(cmd)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, d, DefaultTheme(), DefaultLayout(), credit))
	return buf.String()
}

func TestWriteSVG(t *testing.T) {
	is := is.New(t)
	credit := Credit{Name: "circle-stitcher test", URL: "https://example.com/stitcher"}

	out := renderSVG(t, "H 16 L 7,1 ; L 3 C 5", credit)

	var doc svgDoc
	is.NoErr(xml.Unmarshal([]byte(out), &doc))

	is.Equal(doc.Width, "701")
	is.Equal(doc.Height, "701")
	is.Equal(doc.ViewBox, "0 0 3504 3504")
	is.Equal(len(doc.Rects), 1)
	is.Equal(len(doc.Circles), 17)
	is.Equal(len(doc.Lines), 4+5)
	is.Equal(len(doc.Polygons), 2)
	is.Equal(len(doc.Links), 1)
	is.Equal(doc.Links[0].Href, "https://example.com/stitcher")
	is.Equal(doc.Links[0].Text.Content, "circle-stitcher test")

	is.Equal(doc.Lines[0].Class, "front")
	is.Equal(doc.Lines[1].Class, "back")
	is.Equal(doc.Circles[1].Class, "hole")
	is.Equal(doc.Polygons[0].Fill, "none")
	is.True(strings.Contains(doc.Style, ".seq3 { fill: #515F45; }"))
	is.True(strings.Contains(doc.Style, ".index { font-size: 80px;"))

	comment := strings.Index(out, "Made with circle-stitcher test\nhttps://example.com/stitcher")
	is.True(comment > strings.Index(out, "<?xml"))
	is.True(comment < strings.Index(out, "<svg"))
}

func TestWriteSVGText(t *testing.T) {
	out := renderSVG(t, "H 4 L 1 C 1", Credit{})

	var doc svgDoc
	require.NoError(t, xml.Unmarshal([]byte(out), &doc))
	require.NotContains(t, out, "Made with")
	require.Empty(t, doc.Links)

	var contents []string
	for _, txt := range doc.Texts {
		contents = append(contents, txt.Content)
	}
	require.Equal(t, []string{"Instructions: H 4 L 1 C 1", "1", "2", "Sequence: 1", "Length: 2\""}, contents)

	require.Equal(t, "index seq0", doc.Texts[1].Class)
	require.True(t, strings.HasPrefix(doc.Texts[1].Transform, "rotate(90.0 "))
	require.Equal(t, "summary seq0", doc.Texts[3].Class)
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	cmd, err := Parse("H 4 L 1", Inch)
	require.NoError(t, err)
	d, err := NewRenderer(DefaultTheme(), DefaultLayout(), Credit{}).Render(cmd)
	require.NoError(t, err)

	err = WriteSVG(failingWriter{}, d, DefaultTheme(), DefaultLayout(), Credit{})
	require.ErrorIs(t, err, errWrite)
}
