// Package stationinfo reads and writes the station info file that sits next
// to a tagged station SVG.
package stationinfo

import (
	"encoding/xml"
	"io"
	"io/ioutil"
	s "strings"

	"github.com/pkg/errors"

	"github.com/jeff-blank/trackmap/pkg/trackconn"
)

type Platform struct {
	Id    string `xml:"id,attr"`
	Label string `xml:"label,attr"`
}

type Track struct {
	Id          string         `xml:"id,attr"`
	Position    int            `xml:"position,attr"`
	Connections trackconn.List `xml:"connections,attr,omitempty"`
	StrokeWidth float64        `xml:"stroke-width,attr,omitempty"`
	D           string         `xml:"d,attr,omitempty"`
}

type Station struct {
	XMLName   xml.Name   `xml:"station"`
	Name      string     `xml:"name,attr"`
	Platforms []Platform `xml:"platform"`
	Tracks    []Track    `xml:"track"`
}

func XML2Station(stationXml []byte) (*Station, error) {
	st := Station{}
	if err := xml.Unmarshal(stationXml, &st); err != nil {
		return nil, errors.Wrap(err, "xml.Unmarshal")
	}
	return &st, nil
}

func Station2XML(st *Station, multiLine bool) ([]byte, error) {
	var (
		xmlTxt []byte
		err    error
	)
	if multiLine {
		xmlTxt, err = xml.MarshalIndent(st, "", "    ")
	} else {
		xmlTxt, err = xml.Marshal(st)
	}
	if err != nil {
		return nil, errors.Wrap(err, "xml.Marshal")
	}
	xmlOut := xml.Header +
		s.Replace(
			s.Replace(string(xmlTxt), "></platform>", " />", -1),
			"></track>", " />", -1) +
		"\n"
	return []byte(xmlOut), nil
}

func FindTrackById(st *Station, id string) *Track {
	for i := range st.Tracks {
		if st.Tracks[i].Id == id {
			return &st.Tracks[i]
		}
	}
	return nil
}

func FindPlatformById(st *Station, id string) *Platform {
	for i := range st.Platforms {
		if st.Platforms[i].Id == id {
			return &st.Platforms[i]
		}
	}
	return nil
}

// Connections gathers the connections of every track, sorted.
func (st *Station) Connections() trackconn.List {
	var all trackconn.List
	for _, t := range st.Tracks {
		for _, c := range t.Connections {
			if !all.Contains(c) {
				all = append(all, c)
			}
		}
	}
	all.Sort()
	return all
}

func Read(r io.Reader) (*Station, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read station info")
	}
	return XML2Station(data)
}

func ReadFile(file string) (*Station, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read station info '%s'", file)
	}
	st, err := XML2Station(data)
	return st, errors.Wrapf(err, "'%s'", file)
}

func Write(w io.Writer, st *Station) error {
	data, err := Station2XML(st, true)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "write station info")
}

func WriteFile(file string, st *Station) error {
	data, err := Station2XML(st, true)
	if err != nil {
		return errors.Wrapf(err, "'%s'", file)
	}
	return errors.Wrapf(ioutil.WriteFile(file, data, 0644), "write station info '%s'", file)
}
