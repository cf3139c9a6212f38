package trackconn

import (
	"encoding/xml"

	"github.com/jeff-blank/trackmap/pkg/svgnum"
)

type parseState int

const (
	outsideValue parseState = iota
	gateLetter
	gateTrack
	stationTrack
	stationTrackSide
)

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// skipGroup abandons a malformed group: it returns the position after the
// next ')' or at the next '(', whichever comes first.
func skipGroup(text string, i int) int {
	for ; i < len(text); i++ {
		switch text[i] {
		case ')':
			return i + 1
		case '(':
			return i
		}
	}
	return i
}

// expect consumes optional white space and then c.
func expect(text string, i int, c byte) (int, bool) {
	i += svgnum.SkipSpace(text[i:])
	if i < len(text) && text[i] == c {
		return i + 1, true
	}
	return i, false
}

// Parse reads every well formed group of text. Malformed groups are skipped.
// The side is optional so that text written before sides existed still
// reads; a missing side is SideUnset.
func Parse(text string) List {
	var (
		list  List
		cur   Info
		state = outsideValue
		ok    bool
		i     int
	)
	for i < len(text) {
		switch state {
		case outsideValue:
			if text[i] == '(' {
				cur = Info{}
				state = gateLetter
			}
			i++

		case gateLetter:
			i += svgnum.SkipSpace(text[i:])
			if i >= len(text) {
				return list
			}
			switch c := text[i]; {
			case isLetter(c):
				cur.Gate = upper(c)
			case c == codeUnset:
				cur.Gate = 0
			default:
				i, state = skipGroup(text, i), outsideValue
				continue
			}
			if i, ok = expect(text, i+1, ','); !ok {
				i, state = skipGroup(text, i), outsideValue
				continue
			}
			state = gateTrack

		case gateTrack:
			v, n, parsed := svgnum.ParseInt(text[i:])
			if !parsed {
				i, state = skipGroup(text, i), outsideValue
				continue
			}
			cur.GateTrack = v
			if i, ok = expect(text, i+n, ','); !ok {
				i, state = skipGroup(text, i), outsideValue
				continue
			}
			state = stationTrack

		case stationTrack:
			v, n, parsed := svgnum.ParseInt(text[i:])
			if !parsed {
				i, state = skipGroup(text, i), outsideValue
				continue
			}
			cur.StationTrack = v
			i += n
			if next, closed := expect(text, i, ')'); closed {
				list = append(list, cur)
				i, state = next, outsideValue
				continue
			}
			if i, ok = expect(text, i, ','); !ok {
				i, state = skipGroup(text, i), outsideValue
				continue
			}
			state = stationTrackSide

		case stationTrackSide:
			i += svgnum.SkipSpace(text[i:])
			if i >= len(text) {
				return list
			}
			if c := text[i]; c != ')' {
				cur.Side = SideFromCode(c)
				i++
			}
			if i, ok = expect(text, i, ')'); !ok {
				i, state = skipGroup(text, i), outsideValue
				continue
			}
			list = append(list, cur)
			state = outsideValue
		}
	}
	return list
}

// MarshalXMLAttr writes the list in text form.
func (l List) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: Serialize(l)}, nil
}

// UnmarshalXMLAttr reads the list from text form.
func (l *List) UnmarshalXMLAttr(attr xml.Attr) error {
	*l = Parse(attr.Value)
	return nil
}
