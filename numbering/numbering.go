// Package numbering keeps section counters and cross reference anchors used
// while materializing deferred document parts.
package numbering

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrOutOfRange   = errors.New("number is out of range")
	ErrInvalidLevel = errors.New("invalid header level")
)

// Style formats positive counter value.
type Style func(n int) (string, error)

var upper = cases.Upper(language.Und)

// Arabic formats 1, 2, 3...
func Arabic(n int) (string, error) {
	return strconv.Itoa(n), nil
}

// Alpha formats a, b, ... z, aa, ab...
func Alpha(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: %d, must be positive", ErrOutOfRange, n)
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// AlphaUpper formats A, B, ... Z, AA, AB...
func AlphaUpper(n int) (string, error) {
	s, err := Alpha(n)
	if err != nil {
		return "", err
	}
	return upper.String(s), nil
}

var romans = [...]struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman formats I, II, III... up to 3999.
func Roman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", fmt.Errorf("%w: %d, roman numerals support 1..3999", ErrOutOfRange, n)
	}
	var sb strings.Builder
	for _, r := range romans {
		for ; n >= r.value; n -= r.value {
			sb.WriteString(r.symbol)
		}
	}
	return sb.String(), nil
}

// RomanLower formats i, ii, iii...
func RomanLower(n int) (string, error) {
	s, err := Roman(n)
	if err != nil {
		return "", err
	}
	return strings.ToLower(s), nil
}

// ParseStyle returns style by its conventional name: "1", "a", "A", "I" or
// "i".
func ParseStyle(name string) (Style, error) {
	switch name {
	case "1", "N":
		return Arabic, nil
	case "a", "az":
		return Alpha, nil
	case "A", "AZ":
		return AlphaUpper, nil
	case "I", "IV":
		return Roman, nil
	case "i", "iv":
		return RomanLower, nil
	}
	return nil, fmt.Errorf("unknown numbering style %q", name)
}

// Sections counts headers of nested levels. Level 1 is the document title
// and is not counted, so level 2 uses the first style.
type Sections struct {
	styles   []Style
	counters []int
}

// NewSections returns counters with given styles, default is I, a, 1.
func NewSections(styles ...Style) *Sections {
	if len(styles) == 0 {
		styles = []Style{Roman, Alpha, Arabic}
	}
	return &Sections{styles: styles, counters: make([]int, len(styles))}
}

// NextNumbers increments counter of level, resets deeper ones and returns
// counters of all levels up to level.
func (s *Sections) NextNumbers(level int) ([]int, error) {
	if level < 2 || level > len(s.styles)+1 {
		return nil, fmt.Errorf("%w: %d, expected 2..%d", ErrInvalidLevel, level, len(s.styles)+1)
	}
	idx := level - 2
	s.counters[idx]++
	clear(s.counters[idx+1:])
	out := make([]int, level-1)
	copy(out, s.counters)
	return out, nil
}

// Next returns formatted number of the next header of level, like "II.b.3".
func (s *Sections) Next(level int) (string, error) {
	numbers, err := s.NextNumbers(level)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		if parts[i], err = s.styles[i](n); err != nil {
			return "", fmt.Errorf("level %d: %w", i+2, err)
		}
	}
	return strings.Join(parts, "."), nil
}
