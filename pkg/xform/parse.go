package xform

import (
	s "strings"

	"github.com/jeff-blank/trackmap/pkg/svgnum"
)

// Transform is the transform in effect for an element: the text of every
// transform attribute on the way down, and their composed matrix.
type Transform struct {
	Text   string
	Matrix Matrix
}

// None is the transform of the document root.
func None() Transform {
	return Transform{Matrix: Identity()}
}

// IsIdentity reports whether the composed matrix is the identity.
func (t Transform) IsIdentity() bool {
	return t.Matrix.IsIdentity()
}

// Combine nests the child transform text inside parent. The child applies
// to points first.
func Combine(parent Transform, child string) Transform {
	child = s.TrimSpace(child)
	if child == "" {
		return parent
	}
	text := child
	if parent.Text != "" {
		text = parent.Text + " " + child
	}
	return Transform{Text: text, Matrix: parent.Matrix.Mul(Parse(child))}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Parse composes a transform list such as "translate(5,5) scale(2)". The
// rightmost function applies to points first. Parsing stops at the first
// unknown function, wrong argument count or malformed number, and the part
// composed so far is returned.
func Parse(text string) Matrix {
	m := Identity()
	i := 0
	for {
		i += svgnum.SkipSeparators(text[i:])
		if i >= len(text) {
			return m
		}
		start := i
		for i < len(text) && isLetter(text[i]) {
			i++
		}
		name := text[start:i]
		i += svgnum.SkipSpace(text[i:])
		if name == "" || i >= len(text) || text[i] != '(' {
			return m
		}
		i++

		var args []float64
		for {
			i += svgnum.SkipSeparators(text[i:])
			if i >= len(text) {
				return m
			}
			if text[i] == ')' {
				i++
				break
			}
			v, n, ok := svgnum.ParseNumber(text[i:])
			if !ok {
				return m
			}
			args = append(args, v)
			i += n
		}

		f, ok := function(name, args)
		if !ok {
			return m
		}
		m = m.Mul(f)
	}
}

func function(name string, a []float64) (Matrix, bool) {
	switch name {
	case "matrix":
		if len(a) == 6 {
			return FromSVG(a[0], a[1], a[2], a[3], a[4], a[5]), true
		}
	case "translate":
		switch len(a) {
		case 1:
			return Translate(a[0], 0), true
		case 2:
			return Translate(a[0], a[1]), true
		}
	case "rotate":
		switch len(a) {
		case 1:
			return Rotate(a[0]), true
		case 3:
			return RotateAbout(a[0], a[1], a[2]), true
		}
	case "scale":
		switch len(a) {
		case 1:
			return Scale(a[0], a[0]), true
		case 2:
			return Scale(a[0], a[1]), true
		}
	case "skewX":
		if len(a) == 1 {
			return SkewX(a[0]), true
		}
	case "skewY":
		if len(a) == 1 {
			return SkewY(a[0]), true
		}
	}
	return Matrix{}, false
}
