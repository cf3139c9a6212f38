// Package svgpath converts SVG shape elements into a common path form, writes
// paths back as path data and cuts paths at a point.
package svgpath

import "math"

// Point is a coordinate in user space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }

// Element is one drawing operation of a Path.
type Element interface {
	// End is the current point after the operation.
	End() Point
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

// LineTo draws a straight segment.
type LineTo struct {
	Point Point
}

// CubicTo draws a cubic Bézier segment.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (e MoveTo) End() Point  { return e.Point }
func (e LineTo) End() Point  { return e.Point }
func (e CubicTo) End() Point { return e.Point }

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (CubicTo) isElement() {}

// Path is an ordered sequence of subpaths, each begun by a MoveTo.
type Path struct {
	elements []Element
	current  Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{elements: make([]Element, 0, 8)}
}

// MoveTo begins a new subpath at p.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo adds a line from the current point. On an empty path it starts a
// subpath at pt instead.
func (p *Path) LineTo(pt Point) {
	if len(p.elements) == 0 {
		p.MoveTo(pt)
		return
	}
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bézier from the current point.
func (p *Path) CubicTo(c1, c2, pt Point) {
	if len(p.elements) == 0 {
		p.MoveTo(p.current)
	}
	p.elements = append(p.elements, CubicTo{Control1: c1, Control2: c2, Point: pt})
	p.current = pt
}

// QuadTo adds a quadratic Bézier, stored as the equivalent cubic.
func (p *Path) QuadTo(c, pt Point) {
	start := p.current
	c1 := start.Add(c.Sub(start).Mul(2.0 / 3))
	c2 := pt.Add(c.Sub(pt).Mul(2.0 / 3))
	p.CubicTo(c1, c2, pt)
}

// Elements returns the operations of the path.
func (p *Path) Elements() []Element {
	return p.elements
}

// Len is the number of operations.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no operations.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint is the end point of the last operation.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// SubpathCount is the number of MoveTo operations.
func (p *Path) SubpathCount() int {
	n := 0
	for _, e := range p.elements {
		if _, ok := e.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Map returns a copy of the path with f applied to every point, control
// points included.
func (p *Path) Map(f func(Point) Point) *Path {
	r := &Path{elements: make([]Element, 0, len(p.elements))}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			r.MoveTo(f(e.Point))
		case LineTo:
			r.LineTo(f(e.Point))
		case CubicTo:
			r.CubicTo(f(e.Control1), f(e.Control2), f(e.Point))
		}
	}
	return r
}

// Bounds is the bounding rectangle of every point of the path, control
// points included.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	first := p.elements[0].End()
	r := Rect{Min: first, Max: first}
	for _, e := range p.elements {
		switch e := e.(type) {
		case CubicTo:
			r = r.Extend(e.Control1).Extend(e.Control2).Extend(e.Point)
		default:
			r = r.Extend(e.End())
		}
	}
	return r
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the rectangle spanned by a and b, in any order.
func RectFromPoints(a, b Point) Rect {
	return Rect{Min: a, Max: b}.Normalize()
}

// Normalize swaps coordinates so that Min <= Max on both axes.
func (r Rect) Normalize() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Extend grows r to include p.
func (r Rect) Extend(p Point) Rect {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// AtLeast pads any axis shorter than size symmetrically so it measures size.
func (r Rect) AtLeast(size float64) Rect {
	if w := r.Width(); w < size {
		d := (size - w) / 2
		r.Min.X -= d
		r.Max.X += d
	}
	if h := r.Height(); h < size {
		d := (size - h) / 2
		r.Min.Y -= d
		r.Max.Y += d
	}
	return r
}
