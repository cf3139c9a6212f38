package svgdoc

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/jeff-blank/trackmap/pkg/svgattr"
	"github.com/jeff-blank/trackmap/pkg/svgpath"
)

// SplitElement cuts the shape with the given id where it passes within
// threshold of at. at and threshold are in document coordinates; they are
// mapped into the element's own coordinates through the transforms on it and
// above it. The element keeps the part before the cut, as a path, and a new
// path with the rest is inserted right after it. The new element gets a
// fresh id and a copy of the original's attributes, tagging included.
func (d *Document) SplitElement(id string, at svgpath.Point, threshold float64) (string, bool) {
	n := d.FindID(id)
	if n == nil {
		log.Warnf("split: no element with id '%s'", id)
		return "", false
	}
	p, ok := svgpath.ElementToPath(n)
	if !ok {
		log.Warnf("split: <%s id=%q> has no usable geometry", n.TagName(), id)
		return "", false
	}
	screen := n.ScreenTransform().Matrix
	inv, ok := screen.Invert()
	if !ok {
		log.Warnf("split: <%s id=%q> is drawn with a degenerate transform", n.TagName(), id)
		return "", false
	}
	local := inv.Apply(at)
	localThreshold := threshold / math.Sqrt(math.Abs(screen.Det()))
	r := svgpath.Split(p, local, localThreshold)
	if !r.Found {
		log.Warnf("split: '%s' does not pass within %g of (%g,%g)", id, threshold, at.X, at.Y)
		return "", false
	}

	transform := n.Attribute(svgattr.Transform)
	rest := n.CloneShallow()
	newID := d.uniqueID(id + "-split")
	rest.SetAttribute(svgattr.ID, newID)
	for _, half := range []struct {
		el *Node
		p  *svgpath.Path
	}{{n, r.Before}, {rest, r.After}} {
		ReplaceGeometry(half.el, half.p)
		if transform != "" {
			half.el.SetAttribute(svgattr.Transform, transform)
		}
	}
	n.Parent().InsertAfter(n, rest)
	log.Debugf("split '%s' at (%g,%g) into '%s'", id, r.At.X, r.At.Y, newID)
	return newID, true
}
