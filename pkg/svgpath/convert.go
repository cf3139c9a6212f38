package svgpath

import (
	"github.com/jeff-blank/trackmap/pkg/svgattr"
	"github.com/jeff-blank/trackmap/pkg/svgnum"
)

// maxOperations bounds the number of path data operations read from one d
// attribute. Parsing stops silently when it is reached.
const maxOperations = 1000

// ElementToPath converts a line, polyline, rect or path element to a Path.
// ok is false for other tags and for missing or malformed geometry.
func ElementToPath(el svgattr.Element) (*Path, bool) {
	switch el.TagName() {
	case svgattr.TagLine:
		return LineToPath(el)
	case svgattr.TagPolyline:
		return PolylineToPath(el)
	case svgattr.TagRect:
		return RectToPath(el)
	case svgattr.TagPath:
		if !el.HasAttribute(svgattr.D) {
			return nil, false
		}
		return ParsePathData(el.Attribute(svgattr.D))
	}
	return nil, false
}

func attrNumber(el svgattr.Element, name string) (float64, bool) {
	if !el.HasAttribute(name) {
		return 0, false
	}
	v, _, ok := svgnum.ParseNumber(el.Attribute(name))
	return v, ok
}

func attrNumbers(el svgattr.Element, names ...string) ([]float64, bool) {
	vals := make([]float64, len(names))
	for i, name := range names {
		v, ok := attrNumber(el, name)
		if !ok {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// LineToPath converts a <line> from x1,y1 to x2,y2.
func LineToPath(el svgattr.Element) (*Path, bool) {
	v, ok := attrNumbers(el, svgattr.X1, svgattr.Y1, svgattr.X2, svgattr.Y2)
	if !ok {
		return nil, false
	}
	p := NewPath()
	p.MoveTo(Pt(v[0], v[1]))
	p.LineTo(Pt(v[2], v[3]))
	return p, true
}

// PolylineToPath converts a <polyline>. At least two points are required;
// trailing content that is not a point is ignored.
func PolylineToPath(el svgattr.Element) (*Path, bool) {
	s := el.Attribute(svgattr.Points)
	if s == "" {
		return nil, false
	}
	p := NewPath()
	i := 0
	for {
		i += svgnum.SkipSeparators(s[i:])
		x, y, n, ok := svgnum.ParsePoint(s[i:])
		if !ok {
			break
		}
		i += n
		if p.IsEmpty() {
			p.MoveTo(Pt(x, y))
		} else {
			p.LineTo(Pt(x, y))
		}
	}
	if p.Len() < 2 {
		return nil, false
	}
	return p, true
}

// RectToPath converts a <rect> into a closed four sided path. Corner radii
// are not rendered.
func RectToPath(el svgattr.Element) (*Path, bool) {
	v, ok := attrNumbers(el, svgattr.X, svgattr.Y, svgattr.Width, svgattr.Height)
	if !ok {
		return nil, false
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	p := NewPath()
	p.MoveTo(Pt(x, y))
	p.LineTo(Pt(x+w, y))
	p.LineTo(Pt(x+w, y+h))
	p.LineTo(Pt(x, y+h))
	p.LineTo(Pt(x, y))
	return p, true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isOperation(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Q', 'q':
		return true
	}
	return false
}

// ParsePathData interprets the M, L, H, V, C and Q commands (and their
// relative forms) of a path d attribute. The data must begin with a move.
// Parsing stops without error at the first unsupported command letter or
// malformed coordinate; it fails only when no operation could be read.
func ParsePathData(d string) (*Path, bool) {
	i := svgnum.SkipSpace(d)
	if i >= len(d) || (d[i] != 'M' && d[i] != 'm') {
		return nil, false
	}
	p := NewPath()
	var last Point
	op := d[i]
	ops := 0
	for ops < maxOperations {
		i += svgnum.SkipSeparators(d[i:])
		if i >= len(d) {
			break
		}
		if c := d[i]; isLetter(c) {
			if !isOperation(c) {
				break
			}
			op = c
			i++
		}
		n, ok := applyOperation(p, op, d[i:], &last)
		if !ok {
			break
		}
		i += n
		ops++
		// coordinates following a move are implicit lines
		switch op {
		case 'M':
			op = 'L'
		case 'm':
			op = 'l'
		}
	}
	if ops == 0 {
		return nil, false
	}
	return p, true
}

// readPoints reads count coordinate pairs, each made relative to base when
// rel is set.
func readPoints(s string, count int, rel bool, base Point) ([]Point, int, bool) {
	pts := make([]Point, count)
	i := 0
	for k := 0; k < count; k++ {
		i += svgnum.SkipSeparators(s[i:])
		x, y, n, ok := svgnum.ParsePoint(s[i:])
		if !ok {
			return nil, 0, false
		}
		i += n
		pts[k] = Pt(x, y)
		if rel {
			pts[k] = pts[k].Add(base)
		}
	}
	return pts, i, true
}

func applyOperation(p *Path, op byte, s string, last *Point) (int, bool) {
	rel := op >= 'a' && op <= 'z'
	switch op {
	case 'M', 'm', 'L', 'l':
		pts, n, ok := readPoints(s, 1, rel, *last)
		if !ok {
			return 0, false
		}
		if op == 'M' || op == 'm' {
			p.MoveTo(pts[0])
		} else {
			p.LineTo(pts[0])
		}
		*last = pts[0]
		return n, true
	case 'H', 'h', 'V', 'v':
		v, n, ok := svgnum.ParseNumber(s)
		if !ok {
			return 0, false
		}
		pt := *last
		horizontal := op == 'H' || op == 'h'
		switch {
		case horizontal && rel:
			pt.X += v
		case horizontal:
			pt.X = v
		case rel:
			pt.Y += v
		default:
			pt.Y = v
		}
		p.LineTo(pt)
		*last = pt
		return n, true
	case 'C', 'c':
		pts, n, ok := readPoints(s, 3, rel, *last)
		if !ok {
			return 0, false
		}
		p.CubicTo(pts[0], pts[1], pts[2])
		*last = pts[2]
		return n, true
	case 'Q', 'q':
		pts, n, ok := readPoints(s, 2, rel, *last)
		if !ok {
			return 0, false
		}
		p.QuadTo(pts[0], pts[1])
		*last = pts[1]
		return n, true
	}
	return 0, false
}
