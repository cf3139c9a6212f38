package svgdoc

import (
	log "github.com/sirupsen/logrus"

	"github.com/jeff-blank/trackmap/pkg/svgattr"
	"github.com/jeff-blank/trackmap/pkg/svgpath"
)

// containers pass their transform on to their children when baking.
var containers = map[string]bool{
	"svg":    true,
	"g":      true,
	"a":      true,
	"switch": true,
}

// nonRendered elements are left alone when baking.
var nonRendered = map[string]bool{
	"defs":           true,
	"title":          true,
	"desc":           true,
	"metadata":       true,
	"style":          true,
	"script":         true,
	"symbol":         true,
	"clipPath":       true,
	"mask":           true,
	"marker":         true,
	"pattern":        true,
	"linearGradient": true,
	"radialGradient": true,
}

// ReplaceGeometry rewrites el as a <path> drawing p. Shape attributes and
// any transform are removed.
func ReplaceGeometry(el svgattr.MutableElement, p *svgpath.Path) {
	for _, a := range svgattr.ShapeAttributes {
		el.RemoveAttribute(a)
	}
	el.RemoveAttribute(svgattr.Transform)
	el.SetTagName(svgattr.TagPath)
	el.SetAttribute(svgattr.D, p.String())
}

// BakeTransforms removes every transform from the document by applying it
// to the geometry of the line, polyline, rect and path elements below it,
// which become paths. Other drawn elements get the full transform text
// written on themselves. It returns the number of elements rewritten.
func (d *Document) BakeTransforms() int {
	var (
		baked  int
		groups []*Node
	)
	d.Walk(func(v Visit) bool {
		n := v.Node
		tag := n.TagName()
		switch {
		case containers[tag]:
			if n.HasAttribute(svgattr.Transform) {
				groups = append(groups, n)
			}
			return true
		case nonRendered[tag]:
			return false
		case !svgattr.IsShape(tag):
			if v.Transform.Text != "" {
				n.SetAttribute(svgattr.Transform, v.Transform.Text)
			}
			return false
		}

		if v.Transform.IsIdentity() {
			n.RemoveAttribute(svgattr.Transform)
			return false
		}
		if v.Path == nil {
			log.Warnf("bake: <%s id=%q> has no usable geometry; keeping transform", tag, n.ID())
			n.SetAttribute(svgattr.Transform, v.Transform.Text)
			return false
		}
		ReplaceGeometry(n, v.Transform.Matrix.ApplyPath(v.Path))
		log.Debugf("bake: <%s id=%q> %s", tag, n.ID(), v.Transform.Text)
		baked++
		return false
	})
	for _, g := range groups {
		g.RemoveAttribute(svgattr.Transform)
	}
	return baked
}
