package stitcher

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds the colors of a drawing. Chords, labels and summaries of the
// n-th sequence use SequenceColors[n mod len(SequenceColors)].
type Theme struct {
	NameColor         string   `yaml:"name_color"`
	EmptyCircleFill   string   `yaml:"empty_circle_fill"`
	EmptyCircleStroke string   `yaml:"empty_circle_stroke"`
	CardboardColor    string   `yaml:"cardboard_color"`
	HoleFill          string   `yaml:"hole_fill"`
	HoleStroke        string   `yaml:"hole_stroke"`
	ChordFrontColor   string   `yaml:"chord_front_color"`
	ChordBackColor    string   `yaml:"chord_back_color"`
	SequenceColors    []string `yaml:"sequence_colors"`
}

// DefaultTheme returns the stock colors.
func DefaultTheme() Theme {
	return Theme{
		NameColor:         "#777777",
		EmptyCircleFill:   "#EBE4D6",
		EmptyCircleStroke: "#dddddd",
		CardboardColor:    "#ffffff",
		HoleFill:          "#EBE4D6",
		HoleStroke:        "#333333",
		ChordFrontColor:   "#2B8FF3",
		ChordBackColor:    "#F50C00",
		SequenceColors:    []string{"#000000", "#099A3C", "#8B1828", "#515F45"},
	}
}

// LoadTheme reads a YAML theme file. Keys missing from the file keep their
// default. An empty path returns DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	if path == "" {
		return DefaultTheme(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("error reading theme file: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes YAML over the default theme.
func ParseTheme(data []byte) (Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("error parsing theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Validate checks that every color parses and the palette is not empty.
func (t Theme) Validate() error {
	if len(t.SequenceColors) == 0 {
		return &ConfigurationError{Field: "theme sequence_colors", Msg: "needs at least one color"}
	}
	named := []struct{ key, color string }{
		{"name_color", t.NameColor},
		{"empty_circle_fill", t.EmptyCircleFill},
		{"empty_circle_stroke", t.EmptyCircleStroke},
		{"cardboard_color", t.CardboardColor},
		{"hole_fill", t.HoleFill},
		{"hole_stroke", t.HoleStroke},
		{"chord_front_color", t.ChordFrontColor},
		{"chord_back_color", t.ChordBackColor},
	}
	for _, n := range named {
		if _, err := ParseColor(n.color); err != nil {
			return &ConfigurationError{Field: "theme " + n.key, Msg: err.Error()}
		}
	}
	for i, c := range t.SequenceColors {
		if _, err := ParseColor(c); err != nil {
			return &ConfigurationError{Field: fmt.Sprintf("theme sequence_colors[%d]", i), Msg: err.Error()}
		}
	}
	return nil
}

// SequenceClass is the stylesheet class of the i-th sequence.
func (t Theme) SequenceClass(i int) string {
	return fmt.Sprintf("seq%d", i%len(t.SequenceColors))
}
