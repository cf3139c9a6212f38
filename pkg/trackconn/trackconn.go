// Package trackconn models the connections between station tracks and gate
// tracks, and their compact text form
//
//	(A,0,3,W),(B,1,4,E)
//
// where each group is gate letter, gate track, station track and side.
package trackconn

import (
	"sort"
	"strconv"
	s "strings"
)

// Side is the physical end of the station a connection leaves from.
type Side int

const (
	SideUnset Side = iota
	SideWest
	SideEast
)

// side codes
const (
	codeWest  = 'W'
	codeEast  = 'E'
	codeUnset = '?'
)

func (sd Side) Code() byte {
	switch sd {
	case SideWest:
		return codeWest
	case SideEast:
		return codeEast
	}
	return codeUnset
}

func (sd Side) String() string {
	switch sd {
	case SideWest:
		return "West"
	case SideEast:
		return "East"
	}
	return "Unset"
}

// SideFromCode maps W and E (either case) to a side. Anything else is unset.
func SideFromCode(c byte) Side {
	switch c {
	case codeWest, codeWest + 'a' - 'A':
		return SideWest
	case codeEast, codeEast + 'a' - 'A':
		return SideEast
	}
	return SideUnset
}

// Info connects one station track to one track of a gate. Gate is an upper
// case letter, or 0 when unknown.
type Info struct {
	StationTrack int
	GateTrack    int
	Gate         byte
	Side         Side
}

// GateString is the gate letter, or "?" when it is unknown.
func (i Info) GateString() string {
	if i.Gate == 0 {
		return string(rune(codeUnset))
	}
	return string(rune(i.Gate))
}

func (i Info) String() string {
	var b s.Builder
	writeInfo(&b, i)
	return b.String()
}

// Less orders by station track, then gate, then gate track.
func Less(a, b Info) bool {
	if a.StationTrack != b.StationTrack {
		return a.StationTrack < b.StationTrack
	}
	if a.Gate != b.Gate {
		return a.Gate < b.Gate
	}
	return a.GateTrack < b.GateTrack
}

// MatchByName reports whether a and b describe the same connection.
func MatchByName(a, b Info) bool {
	return a == b
}

// List is a set of connections in text form order.
type List []Info

// Sort orders the list with Less.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool { return Less(l[i], l[j]) })
}

// Contains reports whether an entry of l matches i by name.
func (l List) Contains(i Info) bool {
	for _, x := range l {
		if MatchByName(x, i) {
			return true
		}
	}
	return false
}

func (l List) String() string {
	return Serialize(l)
}

func writeInfo(b *s.Builder, i Info) {
	b.WriteByte('(')
	b.WriteString(i.GateString())
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(i.GateTrack))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(i.StationTrack))
	b.WriteByte(',')
	b.WriteByte(i.Side.Code())
	b.WriteByte(')')
}

// Serialize writes the entries as comma separated groups.
func Serialize(l []Info) string {
	var b s.Builder
	for n, i := range l {
		if n > 0 {
			b.WriteByte(',')
		}
		writeInfo(&b, i)
	}
	return b.String()
}
