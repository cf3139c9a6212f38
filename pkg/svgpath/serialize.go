package svgpath

import (
	"strconv"
	"strings"
)

// coordinate precision, in significant digits
const precision = 9

func writeNumber(b *strings.Builder, v float64) {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	b.WriteString(strconv.FormatFloat(v, 'g', precision, 64))
	b.WriteByte(' ')
}

func writePoint(b *strings.Builder, p Point) {
	writeNumber(b, p.X)
	writeNumber(b, p.Y)
}

// String writes the path as path data. A cubic is written as C followed by
// its three points.
func (p *Path) String() string {
	var b strings.Builder
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			b.WriteString("M ")
			writePoint(&b, e.Point)
		case LineTo:
			b.WriteString("L ")
			writePoint(&b, e.Point)
		case CubicTo:
			b.WriteString("C ")
			writePoint(&b, e.Control1)
			writePoint(&b, e.Control2)
			writePoint(&b, e.Point)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// PathToString is the d attribute value for p.
func PathToString(p *Path) string {
	return p.String()
}
