package svgdoc

import (
	"io"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/jeff-blank/trackmap/pkg/style"
	"github.com/jeff-blank/trackmap/pkg/svgattr"
	"github.com/jeff-blank/trackmap/pkg/svgpath"
)

// parsedElement is a read-only element of a svgparser tree. Attribute names
// are local names; prefixes are not kept.
type parsedElement struct {
	el     *svgparser.Element
	parent *parsedElement
}

var (
	_ svgattr.Element  = (*parsedElement)(nil)
	_ svgattr.Parented = (*parsedElement)(nil)
)

func (p *parsedElement) TagName() string { return p.el.Name }

func (p *parsedElement) HasAttribute(name string) bool {
	_, ok := p.el.Attributes[name]
	return ok
}

func (p *parsedElement) Attribute(name string) string { return p.el.Attributes[name] }

func (p *parsedElement) ParentElement() (svgattr.Element, bool) {
	if p.parent == nil {
		return nil, false
	}
	return p.parent, true
}

// Inspect parses an SVG without keeping it and calls fn for every element,
// parents first, until fn returns false.
func Inspect(r io.Reader, fn func(el svgattr.Element) bool) error {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return errors.Wrap(err, "parse svg")
	}
	inspect(&parsedElement{el: root}, fn)
	return nil
}

func inspect(p *parsedElement, fn func(svgattr.Element) bool) bool {
	if !fn(p) {
		return false
	}
	for _, c := range p.el.Children {
		if !inspect(&parsedElement{el: c, parent: p}, fn) {
			return false
		}
	}
	return true
}

// Tagged is one element carrying station tagging, as listed by Report.
type Tagged struct {
	ID          string
	Tag         string
	Label       string
	Position    string
	Connections string
	// StrokeWidth is 0 when no width is set on the element or the five
	// elements above it.
	StrokeWidth float64
}

// Report lists the elements that carry any tagging attribute.
func Report(r io.Reader) ([]Tagged, error) {
	var tagged []Tagged
	err := Inspect(r, func(el svgattr.Element) bool {
		found := false
		for _, a := range svgattr.TaggingAttributes {
			found = found || el.HasAttribute(a)
		}
		if !found {
			return true
		}
		var bounds svgpath.Rect
		if p, ok := svgpath.ElementToPath(el); ok {
			bounds = p.Bounds()
		}
		tagged = append(tagged, Tagged{
			ID:          el.Attribute(svgattr.ID),
			Tag:         el.TagName(),
			Label:       el.Attribute(svgattr.PlatformLabel),
			Position:    el.Attribute(svgattr.TrackPosition),
			Connections: el.Attribute(svgattr.TrackConnections),
			StrokeWidth: style.ResolveRecursive(el, bounds).StrokeWidthOr(0),
		})
		return true
	})
	return tagged, err
}
