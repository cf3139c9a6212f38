package svgpath

import "math"

// SplitResult holds the two halves of a cut path.
type SplitResult struct {
	Before *Path
	After  *Path
	// At is the point on the path where it was cut.
	At    Point
	Found bool
}

func (p *Path) add(e Element) {
	switch e := e.(type) {
	case MoveTo:
		p.MoveTo(e.Point)
	case LineTo:
		p.LineTo(e.Point)
	case CubicTo:
		p.CubicTo(e.Control1, e.Control2, e.Point)
	}
}

// Split cuts p at the first segment passing within reach of q. Each segment
// is hit-tested against its bounding rectangle, padded on any axis narrower
// than threshold so that horizontal and vertical segments can be hit. A
// cubic is treated as the straight line to its end point.
//
// Before runs from the start of p to the cut point, After from the cut point
// to the end of p. Found is false when no segment is in reach.
func Split(p *Path, q Point, threshold float64) SplitResult {
	before, after := NewPath(), NewPath()
	var (
		last  Point
		at    Point
		found bool
	)
	for _, e := range p.elements {
		if found {
			after.add(e)
			continue
		}
		if m, ok := e.(MoveTo); ok {
			before.MoveTo(m.Point)
			last = m.Point
			continue
		}
		end := e.End()
		hit := RectFromPoints(last, end).AtLeast(threshold)
		if hit.Contains(q) {
			at = splitPoint(last, end, q)
			before.LineTo(at)
			after.MoveTo(at)
			after.LineTo(end)
			found = true
		} else {
			before.add(e)
		}
		last = end
	}
	if !found {
		return SplitResult{}
	}
	return SplitResult{Before: before, After: after, At: at, Found: true}
}

// splitPoint projects q onto the segment a-b. Steep segments are followed by
// q's Y coordinate, all others by its X coordinate.
func splitPoint(a, b, q Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	if math.Abs(dy) > math.Abs(dx) {
		t := clamp01((q.Y - a.Y) / dy)
		return Pt(a.X+t*dx, a.Y+t*dy)
	}
	if dx != 0 {
		t := clamp01((q.X - a.X) / dx)
		return Pt(a.X+t*dx, a.Y+t*dy)
	}
	return a
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
