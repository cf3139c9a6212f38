// Package svgnum scans numbers and coordinate pairs out of SVG attribute
// values. Every function returns how many bytes it consumed so the caller can
// advance its own cursor.
package svgnum

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// IsSpace reports whether c is SVG white space.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// SkipSpace returns the number of leading white space bytes of s.
func SkipSpace(s string) int {
	i := 0
	for i < len(s) && IsSpace(s[i]) {
		i++
	}
	return i
}

// SkipSeparators returns the number of leading white space and comma bytes
// of s.
func SkipSeparators(s string) int {
	i := 0
	for i < len(s) && (IsSpace(s[i]) || s[i] == ',') {
		i++
	}
	return i
}

// ParseNumber reads one number from the start of s: leading white space, an
// optional sign, digits with at most one decimal point, and an optional
// exponent. Scanning stops before the first byte that cannot continue the
// number, so "12.5.3" yields 12.5 and "3-2" yields 3. A number too large for
// a float64 fails.
func ParseNumber(s string) (v float64, n int, ok bool) {
	i := SkipSpace(s)
	if i == len(s) {
		return 0, 0, false
	}
	v, m := strconv.ParseFloat([]byte(s[i:]))
	if m == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, 0, false
	}
	return v, i + m, true
}

// ParsePoint reads an x,y pair. The comma between the two numbers is
// optional and may be surrounded by white space.
func ParsePoint(s string) (x, y float64, n int, ok bool) {
	x, n, ok = ParseNumber(s)
	if !ok {
		return 0, 0, 0, false
	}
	n += SkipSpace(s[n:])
	if n < len(s) && s[n] == ',' {
		n++
	}
	y, m, ok := ParseNumber(s[n:])
	if !ok {
		return 0, 0, 0, false
	}
	return x, y, n + m, true
}

// ParseInt reads a non-negative decimal integer after optional white space.
// It fails when the value does not fit in an int.
func ParseInt(s string) (v int, n int, ok bool) {
	i := SkipSpace(s)
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := int(s[i] - '0')
		if v > (math.MaxInt-d)/10 {
			return 0, 0, false
		}
		v = v*10 + d
		i++
	}
	if i == start {
		return 0, 0, false
	}
	return v, i, true
}
