package svgdoc

import (
	"github.com/jeff-blank/trackmap/pkg/style"
	"github.com/jeff-blank/trackmap/pkg/svgattr"
	"github.com/jeff-blank/trackmap/pkg/svgpath"
	"github.com/jeff-blank/trackmap/pkg/xform"
)

// Visit is an element together with what it inherits.
type Visit struct {
	Node *Node
	// Transform includes the element's own transform attribute.
	Transform xform.Transform
	Style     style.ElementStyle
	// Path is the element geometry, nil unless it is a supported shape
	// with valid attributes.
	Path *svgpath.Path
}

// Walk visits every element depth first, threading transform and stroke
// style down the tree. Children are skipped when fn returns false. fn may
// add siblings after the visited node; they are not visited.
func (d *Document) Walk(fn func(v Visit) bool) {
	root := d.Root()
	if root == nil {
		return
	}
	walk(root, xform.None(), style.New(), fn)
}

func walk(n *Node, parentT xform.Transform, parentS style.ElementStyle, fn func(Visit) bool) {
	v := Visit{Node: n, Transform: parentT}
	if n.HasAttribute(svgattr.Transform) {
		v.Transform = xform.Combine(parentT, n.Attribute(svgattr.Transform))
	}
	var bounds svgpath.Rect
	if svgattr.IsShape(n.TagName()) {
		if p, ok := svgpath.ElementToPath(n); ok {
			v.Path = p
			bounds = p.Bounds()
		}
	}
	v.Style = style.Resolve(n, parentS, bounds)
	if !fn(v) {
		return
	}
	for _, c := range n.Elements() {
		walk(c, v.Transform, v.Style, fn)
	}
}

// FindID returns the element with the given id, or nil.
func (d *Document) FindID(id string) *Node {
	var found *Node
	d.node.each(func(n *Node) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ScreenTransform composes the transform attributes of n and every element
// above it, mapping n's own coordinates to those of the document.
func (n *Node) ScreenTransform() xform.Transform {
	var chain []*Node
	for cur := n; cur != nil && cur.Kind == ElementNode; cur = cur.parent {
		chain = append(chain, cur)
	}
	tr := xform.None()
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].HasAttribute(svgattr.Transform) {
			tr = xform.Combine(tr, chain[i].Attribute(svgattr.Transform))
		}
	}
	return tr
}
