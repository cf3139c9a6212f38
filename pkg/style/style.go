// Package style resolves the effective stroke width of an element from its
// style and stroke-width attributes and those of its ancestors.
package style

import (
	s "strings"

	"github.com/aymerick/douceur/parser"

	"github.com/jeff-blank/trackmap/pkg/svgattr"
	"github.com/jeff-blank/trackmap/pkg/svgnum"
	"github.com/jeff-blank/trackmap/pkg/svgpath"
)

// Unset marks a stroke width that was not given.
const Unset = -1

// maxAncestors is how far ResolveRecursive looks up the tree.
const maxAncestors = 5

// ElementStyle tracks the stroke width found in a CSS style attribute
// separately from the one found in a stroke-width attribute. A style sourced
// width wins when both are set.
type ElementStyle struct {
	StyleStrokeWidth  float64
	NormalStrokeWidth float64
}

// New returns a style with neither width set.
func New() ElementStyle {
	return ElementStyle{StyleStrokeWidth: Unset, NormalStrokeWidth: Unset}
}

// FinalStrokeWidth is the width that applies, style first. ok is false when
// neither width is set.
func (e ElementStyle) FinalStrokeWidth() (float64, bool) {
	if e.StyleStrokeWidth > 0 {
		return e.StyleStrokeWidth, true
	}
	if e.NormalStrokeWidth > 0 {
		return e.NormalStrokeWidth, true
	}
	return 0, false
}

// StrokeWidthOr is FinalStrokeWidth with a fallback value.
func (e ElementStyle) StrokeWidthOr(def float64) float64 {
	if w, ok := e.FinalStrokeWidth(); ok {
		return w
	}
	return def
}

// Resolve starts from the inherited parent style and overrides whichever
// width el sets itself. A stroke-width declaration in the style attribute is
// used when present, otherwise the stroke-width attribute. Percentages are
// taken of the mean of the bounds' width and height.
func Resolve(el svgattr.Element, parent ElementStyle, bounds svgpath.Rect) ElementStyle {
	st := parent
	if el.HasAttribute(svgattr.Style) {
		if text, ok := declaration(el.Attribute(svgattr.Style), svgattr.StrokeWidth); ok {
			if w, ok := parseWidth(text, bounds); ok {
				st.StyleStrokeWidth = w
			}
			return st
		}
	}
	if el.HasAttribute(svgattr.StrokeWidth) {
		if w, ok := parseWidth(el.Attribute(svgattr.StrokeWidth), bounds); ok {
			st.NormalStrokeWidth = w
		}
	}
	return st
}

// ResolveRecursive resolves el without a threaded parent style by applying
// Resolve from up to five ancestors down to el. Ancestors are only visible
// when el implements svgattr.Parented.
func ResolveRecursive(el svgattr.Element, bounds svgpath.Rect) ElementStyle {
	chain := []svgattr.Element{el}
	cur := el
	for i := 0; i < maxAncestors; i++ {
		p, ok := cur.(svgattr.Parented)
		if !ok {
			break
		}
		parent, ok := p.ParentElement()
		if !ok {
			break
		}
		chain = append(chain, parent)
		cur = parent
	}
	st := New()
	for i := len(chain) - 1; i >= 0; i-- {
		st = Resolve(chain[i], st, bounds)
	}
	return st
}

// declaration finds the value of property in a CSS declaration list. The
// CSS parser loses the value of a last declaration that has no ';', so the
// list is terminated first and an empty value is looked up by hand.
func declaration(style, property string) (string, bool) {
	text := s.TrimSpace(style)
	if !s.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return scanDeclaration(style, property)
	}
	for _, d := range decls {
		if d.Property != property {
			continue
		}
		if s.TrimSpace(d.Value) == "" {
			return scanDeclaration(style, property)
		}
		return d.Value, true
	}
	return "", false
}

// scanDeclaration is the plain text lookup of "property:" up to the next ';'.
func scanDeclaration(style, property string) (string, bool) {
	for _, part := range s.Split(style, ";") {
		kv := s.SplitN(part, ":", 2)
		if len(kv) == 2 && s.TrimSpace(kv[0]) == property {
			return s.TrimSpace(kv[1]), true
		}
	}
	return "", false
}

func parseWidth(text string, bounds svgpath.Rect) (float64, bool) {
	v, n, ok := svgnum.ParseNumber(text)
	if !ok {
		return 0, false
	}
	if s.Contains(text[n:], "%") {
		avg := (bounds.Width() + bounds.Height()) / 2
		v = v / 100 * avg
	}
	if v <= 0 {
		return 0, false
	}
	return v, true
}
