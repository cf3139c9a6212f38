package xform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeff-blank/trackmap/pkg/svgpath"
)

func assertPoint(t *testing.T, want, got svgpath.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestCombineTranslateScale(t *testing.T) {
	tr := Combine(None(), "translate(5,5) scale(2)")
	assert.Equal(t, "translate(5,5) scale(2)", tr.Text)
	assertPoint(t, svgpath.Pt(7, 7), tr.Matrix.Apply(svgpath.Pt(1, 1)))
}

func TestCombineNesting(t *testing.T) {
	parent := Combine(None(), "translate(10,0)")
	child := Combine(parent, "scale(3)")
	assert.Equal(t, "translate(10,0) scale(3)", child.Text)
	// the child scales first, then the parent moves
	assertPoint(t, svgpath.Pt(13, 3), child.Matrix.Apply(svgpath.Pt(1, 1)))

	assert.Equal(t, parent, Combine(parent, "   "))
	assert.True(t, None().IsIdentity())
	assert.False(t, child.IsIdentity())

	fromEmpty := Combine(Transform{Matrix: Identity()}, "rotate(90)")
	assert.Equal(t, "rotate(90)", fromEmpty.Text)
}

func TestParseFunctions(t *testing.T) {
	tests := []struct {
		text string
		in   svgpath.Point
		want svgpath.Point
	}{
		{"", svgpath.Pt(1, 2), svgpath.Pt(1, 2)},
		{"translate(3)", svgpath.Pt(1, 2), svgpath.Pt(4, 2)},
		{"translate(3 -4)", svgpath.Pt(1, 2), svgpath.Pt(4, -2)},
		{"scale(2,3)", svgpath.Pt(1, 2), svgpath.Pt(2, 6)},
		{"scale(-1)", svgpath.Pt(1, 2), svgpath.Pt(-1, -2)},
		{"rotate(90)", svgpath.Pt(1, 0), svgpath.Pt(0, 1)},
		{"rotate(180, 5, 5)", svgpath.Pt(4, 5), svgpath.Pt(6, 5)},
		{"rotate(90 10 10)", svgpath.Pt(10, 0), svgpath.Pt(20, 10)},
		{"skewX(45)", svgpath.Pt(0, 2), svgpath.Pt(2, 2)},
		{"skewY(45)", svgpath.Pt(3, 0), svgpath.Pt(3, 3)},
		{"matrix(1,0,0,1,7,8)", svgpath.Pt(1, 1), svgpath.Pt(8, 9)},
		{"matrix(0 1 -1 0 0 0)", svgpath.Pt(1, 0), svgpath.Pt(0, 1)},
		{"scale(2),translate(1,1)", svgpath.Pt(0, 0), svgpath.Pt(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assertPoint(t, tt.want, Parse(tt.text).Apply(tt.in))
		})
	}
}

func TestParseStopsAtBadInput(t *testing.T) {
	// everything before the bad function is kept
	for _, text := range []string{
		"translate(5) wobble(2) scale(10)",
		"translate(5) scale(1,2,3)",
		"translate(5) scale(x)",
		"translate(5) scale(2",
		"translate(5) (2)",
		"translate(5) Scale(2)",
	} {
		t.Run(text, func(t *testing.T) {
			assertPoint(t, svgpath.Pt(6, 1), Parse(text).Apply(svgpath.Pt(1, 1)))
		})
	}
	assert.True(t, Parse("junk").IsIdentity())
}

func TestApplyPath(t *testing.T) {
	p := svgpath.NewPath()
	p.MoveTo(svgpath.Pt(0, 0))
	p.LineTo(svgpath.Pt(1, 0))
	p.CubicTo(svgpath.Pt(1, 1), svgpath.Pt(2, 1), svgpath.Pt(2, 0))
	q := Translate(1, 2).ApplyPath(p)
	require.Equal(t, 3, q.Len())
	assert.Equal(t, "M 1 2 L 2 2 C 2 3 3 3 3 2", q.String())
	// the source path is untouched
	assert.Equal(t, "M 0 0 L 1 0 C 1 1 2 1 2 0", p.String())
}

func TestMatrixString(t *testing.T) {
	m := FromSVG(1, 2, 3, 4, 5, 6)
	assert.Equal(t, "matrix(1,2,3,4,5,6)", m.String())
	assert.Equal(t, m, Parse(m.String()))
	assert.Equal(t, 5.0, m.Aff3()[2])
}

func TestInvert(t *testing.T) {
	for _, text := range []string{
		"translate(3,-4)",
		"scale(2,0.5)",
		"rotate(30, 5, 5)",
		"translate(100,0) scale(2) skewX(20)",
		"matrix(1,2,3,4,5,6)",
	} {
		t.Run(text, func(t *testing.T) {
			m := Parse(text)
			inv, ok := m.Invert()
			require.True(t, ok)
			p := svgpath.Pt(7, -3)
			assertPoint(t, p, inv.Apply(m.Apply(p)))
			assertPoint(t, p, m.Apply(inv.Apply(p)))
		})
	}

	assert.Equal(t, 4.0, Scale(2, 2).Det())
	_, ok := Scale(0, 1).Invert()
	assert.False(t, ok)
	_, ok = FromSVG(1, 2, 2, 4, 0, 0).Invert()
	assert.False(t, ok)
}
