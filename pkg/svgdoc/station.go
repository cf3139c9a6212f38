package svgdoc

import (
	"strconv"
	s "strings"

	log "github.com/sirupsen/logrus"

	"github.com/jeff-blank/trackmap/pkg/stationinfo"
	"github.com/jeff-blank/trackmap/pkg/svgattr"
	"github.com/jeff-blank/trackmap/pkg/svgnum"
	"github.com/jeff-blank/trackmap/pkg/trackconn"
)

// trackPosition reads a whole, non-negative position number.
func trackPosition(text string) (int, bool) {
	text = s.TrimSpace(text)
	v, n, ok := svgnum.ParseInt(text)
	if !ok || n != len(text) {
		return 0, false
	}
	return v, true
}

func strip(n *Node, attr, why string) {
	log.Debugf("<%s id=%q>: removing %s=%q: %s", n.TagName(), n.ID(), attr, n.Attribute(attr), why)
	n.RemoveAttribute(attr)
}

// Extract collects the platforms and tracks tagged in the document. Tagging
// attributes that do not parse are removed from their element. Tracks without
// a stroke width of their own or inherited get defaultStrokeWidth.
func (d *Document) Extract(name string, defaultStrokeWidth float64) *stationinfo.Station {
	st := &stationinfo.Station{Name: name}
	d.Walk(func(v Visit) bool {
		n := v.Node
		id := n.ID()

		if n.HasAttribute(svgattr.PlatformLabel) {
			label := s.TrimSpace(n.Attribute(svgattr.PlatformLabel))
			switch {
			case label == "":
				strip(n, svgattr.PlatformLabel, "empty label")
			case id == "":
				log.Warnf("platform '%s' on <%s> has no id; skipped", label, n.TagName())
			default:
				st.Platforms = append(st.Platforms, stationinfo.Platform{Id: id, Label: label})
			}
		}

		if n.HasAttribute(svgattr.TrackConnections) && len(trackconn.Parse(n.Attribute(svgattr.TrackConnections))) == 0 {
			strip(n, svgattr.TrackConnections, "no connection parses")
		}
		if !n.HasAttribute(svgattr.TrackPosition) {
			return true
		}
		pos, ok := trackPosition(n.Attribute(svgattr.TrackPosition))
		if !ok {
			strip(n, svgattr.TrackPosition, "not a track number")
			return true
		}
		if id == "" {
			log.Warnf("track %d on <%s> has no id; skipped", pos, n.TagName())
			return true
		}
		t := stationinfo.Track{
			Id:          id,
			Position:    pos,
			Connections: trackconn.Parse(n.Attribute(svgattr.TrackConnections)),
			StrokeWidth: v.Style.StrokeWidthOr(defaultStrokeWidth),
		}
		if v.Path != nil {
			t.D = v.Path.String()
		}
		st.Tracks = append(st.Tracks, t)
		return true
	})
	return st
}

// Apply writes the tagging of st onto the elements with matching ids. It
// returns how many elements were tagged and the ids that were not found.
func (d *Document) Apply(st *stationinfo.Station) (applied int, missing []string) {
	for _, p := range st.Platforms {
		n := d.FindID(p.Id)
		if n == nil {
			missing = append(missing, p.Id)
			continue
		}
		n.SetAttribute(svgattr.PlatformLabel, p.Label)
		applied++
	}
	for _, t := range st.Tracks {
		n := d.FindID(t.Id)
		if n == nil {
			missing = append(missing, t.Id)
			continue
		}
		n.SetAttribute(svgattr.TrackPosition, strconv.Itoa(t.Position))
		if len(t.Connections) > 0 {
			n.SetAttribute(svgattr.TrackConnections, trackconn.Serialize(t.Connections))
		} else {
			n.RemoveAttribute(svgattr.TrackConnections)
		}
		applied++
	}
	return applied, missing
}
