// Package xform parses SVG transform attributes into affine matrices and
// composes them down an element tree.
package xform

import (
	"math"
	"strconv"
	s "strings"

	"golang.org/x/image/math/f64"

	"github.com/jeff-blank/trackmap/pkg/svgpath"
)

// Matrix is a 2D affine transform laid out as f64.Aff3:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
type Matrix f64.Aff3

// Identity is the transform that changes nothing.
func Identity() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0}
}

// FromSVG builds the matrix written in SVG as matrix(a,b,c,d,e,f).
func FromSVG(a, b, c, d, e, f float64) Matrix {
	return Matrix{a, c, e, b, d, f}
}

func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, tx, 0, 1, ty}
}

func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, 0, sy, 0}
}

// Rotate turns by deg degrees, clockwise in SVG's y-down space.
func Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix{cos, -sin, 0, sin, cos, 0}
}

// RotateAbout turns by deg degrees around (cx, cy).
func RotateAbout(deg, cx, cy float64) Matrix {
	return Translate(cx, cy).Mul(Rotate(deg)).Mul(Translate(-cx, -cy))
}

func SkewX(deg float64) Matrix {
	return Matrix{1, math.Tan(deg * math.Pi / 180), 0, 0, 1, 0}
}

func SkewY(deg float64) Matrix {
	return Matrix{1, 0, 0, math.Tan(deg * math.Pi / 180), 1, 0}
}

// Mul returns m·n, the transform that applies n first and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Invert returns the transform that undoes m. ok is false when m collapses
// the plane onto a line or a point.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	return Matrix{
		m[4] / det,
		-m[1] / det,
		(m[1]*m[5] - m[4]*m[2]) / det,
		-m[3] / det,
		m[0] / det,
		(m[3]*m[2] - m[0]*m[5]) / det,
	}, true
}

// Det is the determinant of the linear part, the factor by which m scales
// areas.
func (m Matrix) Det() float64 {
	return m[0]*m[4] - m[1]*m[3]
}

// Apply maps a point.
func (m Matrix) Apply(p svgpath.Point) svgpath.Point {
	return svgpath.Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// ApplyPath maps every point of p, control points included.
func (m Matrix) ApplyPath(p *svgpath.Path) *svgpath.Path {
	return p.Map(m.Apply)
}

// IsIdentity reports whether m leaves every point in place.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Aff3 returns m in the x/image layout.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3(m)
}

// String writes m as an SVG matrix() function.
func (m Matrix) String() string {
	vals := []float64{m[0], m[3], m[1], m[4], m[2], m[5]}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', 9, 64)
	}
	return "matrix(" + s.Join(parts, ",") + ")"
}
