// seehuhn.de/go/chart - raster charts for run analytics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chart

import (
	"image/color"
	"strconv"
)

// Hex parses a CSS style hex colour: "#rgb", "#rgba", "#rrggbb" or
// "#rrggbbaa", with or without the leading '#'. Invalid input gives
// opaque black.
func Hex(s string) color.NRGBA {
	c, ok := parseHex(s)
	if !ok {
		return color.NRGBA{A: 255}
	}
	return c
}

// ParseHex is like Hex but reports whether s was valid.
func ParseHex(s string) (color.NRGBA, bool) {
	return parseHex(s)
}

func parseHex(s string) (color.NRGBA, bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	digit := func(i, n int) (uint8, bool) {
		v, err := strconv.ParseUint(s[i:i+n], 16, 8)
		if err != nil {
			return 0, false
		}
		if n == 1 {
			v *= 17
		}
		return uint8(v), true
	}

	var n int
	switch len(s) {
	case 3, 4:
		n = 1
	case 6, 8:
		n = 2
	default:
		return color.NRGBA{}, false
	}

	var ch [4]uint8
	ch[3] = 255
	for i := range len(s) / n {
		v, ok := digit(i*n, n)
		if !ok {
			return color.NRGBA{}, false
		}
		ch[i] = v
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}

// WithAlpha returns c with its alpha channel replaced. This corresponds to
// appending a two digit alpha suffix to a "#rrggbb" colour.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// HexString formats c as "#rrggbb", or "#rrggbbaa" if c is not opaque.
func HexString(c color.NRGBA) string {
	const digits = "0123456789abcdef"
	buf := []byte{'#'}
	for _, v := range []uint8{c.R, c.G, c.B} {
		buf = append(buf, digits[v>>4], digits[v&15])
	}
	if c.A != 255 {
		buf = append(buf, digits[c.A>>4], digits[c.A&15])
	}
	return string(buf)
}
