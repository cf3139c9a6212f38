// Package svgdoc holds an SVG file as an editable tree and runs the station
// tagging operations over it: transform baking, id assignment, extraction of
// platforms and tracks, and splitting of track elements.
package svgdoc

import (
	"encoding/xml"

	"github.com/jeff-blank/trackmap/pkg/svgattr"
)

type NodeKind int

const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
	CommentNode
	ProcInstNode
	DirectiveNode
)

// Node is one item of the tree. Element names and attribute names keep the
// namespace prefix they were written with in Name.Space.
type Node struct {
	Kind     NodeKind
	Name     xml.Name
	Attr     []xml.Attr
	Data     string
	Children []*Node
	parent   *Node
}

var (
	_ svgattr.MutableElement = (*Node)(nil)
	_ svgattr.Parented       = (*Node)(nil)
)

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func splitQualified(name string) xml.Name {
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return xml.Name{Space: name[:i], Local: name[i+1:]}
		}
	}
	return xml.Name{Local: name}
}

func (n *Node) attrIndex(name string) int {
	for i, a := range n.Attr {
		if qualified(a.Name) == name {
			return i
		}
	}
	return -1
}

// TagName is the element name without prefix.
func (n *Node) TagName() string { return n.Name.Local }

func (n *Node) SetTagName(name string) { n.Name.Local = name }

func (n *Node) HasAttribute(name string) bool { return n.attrIndex(name) >= 0 }

// Attribute returns the value of the attribute written as name, with its
// prefix if it has one.
func (n *Node) Attribute(name string) string {
	if i := n.attrIndex(name); i >= 0 {
		return n.Attr[i].Value
	}
	return ""
}

// SetAttribute replaces the value in place, or appends a new attribute.
func (n *Node) SetAttribute(name, value string) {
	if i := n.attrIndex(name); i >= 0 {
		n.Attr[i].Value = value
		return
	}
	n.Attr = append(n.Attr, xml.Attr{Name: splitQualified(name), Value: value})
}

func (n *Node) RemoveAttribute(name string) {
	if i := n.attrIndex(name); i >= 0 {
		n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
	}
}

// ID is the id attribute.
func (n *Node) ID() string { return n.Attribute(svgattr.ID) }

// Parent is the enclosing node, nil for the document node.
func (n *Node) Parent() *Node { return n.parent }

func (n *Node) ParentElement() (svgattr.Element, bool) {
	if n.parent == nil || n.parent.Kind != ElementNode {
		return nil, false
	}
	return n.parent, true
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// InsertAfter adds c right after ref, or at the end when ref is not a child
// of n.
func (n *Node) InsertAfter(ref, c *Node) {
	c.parent = n
	for i, ch := range n.Children {
		if ch == ref {
			n.Children = append(n.Children[:i+1], append([]*Node{c}, n.Children[i+1:]...)...)
			return
		}
	}
	n.Children = append(n.Children, c)
}

// Elements returns the element children of n.
func (n *Node) Elements() []*Node {
	var els []*Node
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			els = append(els, c)
		}
	}
	return els
}

// CloneShallow copies the name and attributes of an element, not its
// children. The copy has no parent.
func (n *Node) CloneShallow() *Node {
	c := &Node{Kind: n.Kind, Name: n.Name, Data: n.Data}
	c.Attr = make([]xml.Attr, len(n.Attr))
	copy(c.Attr, n.Attr)
	return c
}

// each visits n and every element below it, depth first, until fn returns
// false.
func (n *Node) each(fn func(*Node) bool) bool {
	if n.Kind == ElementNode && !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if c.Kind == ElementNode || c.Kind == DocumentNode {
			if !c.each(fn) {
				return false
			}
		}
	}
	return true
}
