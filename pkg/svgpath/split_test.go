package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func horizontal() *Path {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	return p
}

func TestSplitHorizontal(t *testing.T) {
	r := Split(horizontal(), Pt(5, 0.5), 2)
	require.True(t, r.Found)
	assert.Equal(t, Pt(5, 0), r.At)
	assert.Equal(t, []Element{MoveTo{Pt(0, 0)}, LineTo{Pt(5, 0)}}, r.Before.Elements())
	assert.Equal(t, []Element{MoveTo{Pt(5, 0)}, LineTo{Pt(10, 0)}}, r.After.Elements())
}

func TestSplitMiss(t *testing.T) {
	r := Split(horizontal(), Pt(50, 0), 2)
	assert.False(t, r.Found)
	assert.Nil(t, r.Before)
	assert.Nil(t, r.After)

	// just outside the padded band
	r = Split(horizontal(), Pt(5, 1.01), 2)
	assert.False(t, r.Found)
}

func TestSplitSteepUsesY(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(2, 10))
	r := Split(p, Pt(0.5, 5), 1)
	require.True(t, r.Found)
	assert.InDelta(t, 1, r.At.X, 1e-12)
	assert.InDelta(t, 5, r.At.Y, 1e-12)
}

func TestSplitShallowUsesX(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 2))
	r := Split(p, Pt(5, 0), 1)
	require.True(t, r.Found)
	assert.InDelta(t, 5, r.At.X, 1e-12)
	assert.InDelta(t, 1, r.At.Y, 1e-12)
}

func TestSplitMultiSegment(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(10, 10))
	p.CubicTo(Pt(12, 12), Pt(14, 12), Pt(20, 10))
	p.MoveTo(Pt(30, 30))
	p.LineTo(Pt(40, 30))

	r := Split(p, Pt(10.3, 4), 2)
	require.True(t, r.Found)
	assert.Equal(t, Pt(10, 4), r.At)
	assert.Equal(t, []Element{
		MoveTo{Pt(0, 0)},
		LineTo{Pt(10, 0)},
		LineTo{Pt(10, 4)},
	}, r.Before.Elements())
	assert.Equal(t, []Element{
		MoveTo{Pt(10, 4)},
		LineTo{Pt(10, 10)},
		CubicTo{Pt(12, 12), Pt(14, 12), Pt(20, 10)},
		MoveTo{Pt(30, 30)},
		LineTo{Pt(40, 30)},
	}, r.After.Elements())
}

func TestSplitCurveAsLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(3, 5), Pt(7, 5), Pt(10, 0))
	// the control points are not part of the hit test
	assert.False(t, Split(p, Pt(5, 4), 1).Found)

	r := Split(p, Pt(5, 0.2), 1)
	require.True(t, r.Found)
	assert.Equal(t, Pt(5, 0), r.At)
	assert.Equal(t, []Element{MoveTo{Pt(5, 0)}, LineTo{Pt(10, 0)}}, r.After.Elements())
}

func TestSplitFirstHitWins(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(0, 0.5))
	r := Split(p, Pt(5, 0.2), 2)
	require.True(t, r.Found)
	assert.Equal(t, Pt(5, 0), r.At)
	assert.Equal(t, 3, r.After.Len())
}

func TestRectAtLeast(t *testing.T) {
	r := RectFromPoints(Pt(10, 0), Pt(0, 0)).AtLeast(2)
	assert.Equal(t, Rect{Min: Pt(0, -1), Max: Pt(10, 1)}, r)
	r = RectFromPoints(Pt(0, 0), Pt(5, 5)).AtLeast(2)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(5, 5)}, r)
}
