package stitcher

import (
	"fmt"
	stdcol "image/color"
	"strconv"
	"strings"

	"github.com/jphsd/graphics2d/color"
)

// ParseColor reads a #rgb, #rrggbb or named color. "none" gives a nil color.
func ParseColor(str string) (stdcol.Color, error) {
	str = strings.TrimSpace(str)
	if str == "none" {
		return nil, nil
	}
	if strings.HasPrefix(str, "#") {
		return parseHexColor(str)
	}
	col, err := color.ByName(str)
	if err != nil {
		return nil, fmt.Errorf("color %q can't be parsed", str)
	}
	return col.Color, nil
}

func parseHexColor(c string) (stdcol.Color, error) {
	var v uint64
	var err error
	switch len(c) {
	case 4, 7:
		v, err = strconv.ParseUint(c[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("color %q can't be parsed", c)
		}
	default:
		return nil, fmt.Errorf("color %q not of valid length", c)
	}

	if len(c) == 4 {
		r := ((v & 0xf00) >> 8) * 0x11
		g := ((v & 0xf0) >> 4) * 0x11
		b := (v & 0xf) * 0x11
		return stdcol.RGBA{uint8(r), uint8(g), uint8(b), 0xff}, nil
	}
	r := (v & 0xff0000) >> 16
	g := (v & 0xff00) >> 8
	b := v & 0xff
	return stdcol.RGBA{uint8(r), uint8(g), uint8(b), 0xff}, nil
}
