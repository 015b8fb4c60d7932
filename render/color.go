package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor accepts SVG color names and hex notation: #rgb, #rgba, #rrggbb
// and #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("unknown color %q", s)
	}

	var digits []uint8
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad color %q: %w", s, err)
			}
			digits = append(digits, uint8(v*17))
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad color %q: %w", s, err)
			}
			digits = append(digits, uint8(v))
		}
	default:
		return nil, fmt.Errorf("bad color %q: unexpected length", s)
	}
	if len(digits) == 3 {
		digits = append(digits, 0xff)
	}
	return color.NRGBA{R: digits[0], G: digits[1], B: digits[2], A: digits[3]}, nil
}
