// Package svgattr holds the element capability the geometry code is written
// against, and the attribute names it reads and writes.
package svgattr

// svg attributes
const (
	ID          = "id"
	X1          = "x1"
	Y1          = "y1"
	X2          = "x2"
	Y2          = "y2"
	Points      = "points"
	X           = "x"
	Y           = "y"
	Width       = "width"
	Height      = "height"
	RX          = "rx"
	RY          = "ry"
	D           = "d"
	Style       = "style"
	StrokeWidth = "stroke-width"
	Transform   = "transform"
)

// station tagging attributes
const (
	PlatformLabel    = "data-platform-label"
	TrackPosition    = "data-track-position"
	TrackConnections = "data-track-connections"
)

// tag names
const (
	TagLine     = "line"
	TagPolyline = "polyline"
	TagRect     = "rect"
	TagPath     = "path"
	TagGroup    = "g"
)

// ShapeAttributes are the geometry attributes of every supported shape other
// than d. They are dropped when a shape is rewritten as a path.
var ShapeAttributes = []string{X1, Y1, X2, Y2, Points, X, Y, Width, Height, RX, RY}

// TaggingAttributes are the station semantics carried on an element.
var TaggingAttributes = []string{PlatformLabel, TrackPosition, TrackConnections}

// Element is a read view of one markup element.
type Element interface {
	TagName() string
	HasAttribute(name string) bool
	Attribute(name string) string
}

// MutableElement is an element whose attributes and tag can be rewritten.
type MutableElement interface {
	Element
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	SetTagName(name string)
}

// Parented is implemented by elements that know their enclosing element.
// ok is false at the root.
type Parented interface {
	ParentElement() (parent Element, ok bool)
}

// IsShape reports whether tag is one of the shapes that convert to a path.
func IsShape(tag string) bool {
	switch tag {
	case TagLine, TagPolyline, TagRect, TagPath:
		return true
	}
	return false
}

// Attrs is a free-standing element backed by a map. It is handy for
// synthesizing an element around a single attribute.
type Attrs struct {
	Tag    string
	Values map[string]string
	Parent *Attrs
}

// NewAttrs returns an element with the given tag and name/value pairs.
func NewAttrs(tag string, kv ...string) *Attrs {
	a := &Attrs{Tag: tag, Values: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		a.Values[kv[i]] = kv[i+1]
	}
	return a
}

func (a *Attrs) TagName() string { return a.Tag }

func (a *Attrs) HasAttribute(name string) bool {
	_, ok := a.Values[name]
	return ok
}

func (a *Attrs) Attribute(name string) string { return a.Values[name] }

func (a *Attrs) SetAttribute(name, value string) {
	if a.Values == nil {
		a.Values = make(map[string]string)
	}
	a.Values[name] = value
}

func (a *Attrs) RemoveAttribute(name string) { delete(a.Values, name) }

func (a *Attrs) SetTagName(name string) { a.Tag = name }

func (a *Attrs) ParentElement() (Element, bool) {
	if a.Parent == nil {
		return nil, false
	}
	return a.Parent, true
}
