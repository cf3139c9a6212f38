package stationinfo

import (
	"bytes"
	"path/filepath"
	s "strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeff-blank/trackmap/pkg/trackconn"
)

func central() *Station {
	return &Station{
		Name:      "Central",
		Platforms: []Platform{{Id: "p1", Label: "1 & 2"}},
		Tracks: []Track{
			{
				Id:       "t1",
				Position: 1,
				Connections: trackconn.List{
					{StationTrack: 1, GateTrack: 3, Gate: 'B', Side: trackconn.SideEast},
					{StationTrack: 1, GateTrack: 0, Gate: 'A', Side: trackconn.SideWest},
				},
				StrokeWidth: 2.5,
				D:           "M 0 0 L 10 0",
			},
			{Id: "t2", Position: 2},
		},
	}
}

func TestStation2XML(t *testing.T) {
	out, err := Station2XML(central(), true)
	require.NoError(t, err)
	want := `<?xml version="1.0" encoding="UTF-8"?>
<station name="Central">
    <platform id="p1" label="1 &amp; 2" />
    <track id="t1" position="1" connections="(B,3,1,E),(A,0,1,W)" stroke-width="2.5" d="M 0 0 L 10 0" />
    <track id="t2" position="2" />
</station>
`
	assert.Equal(t, want, string(out))
}

func TestReadWrite(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&b, central()))
	st, err := Read(&b)
	require.NoError(t, err)
	assert.Equal(t, central().Tracks, st.Tracks)
	assert.Equal(t, central().Platforms, st.Platforms)
	assert.Equal(t, "Central", st.Name)
}

func TestFiles(t *testing.T) {
	file := filepath.Join(t.TempDir(), "central.xml")
	require.NoError(t, WriteFile(file, central()))
	st, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "M 0 0 L 10 0", FindTrackById(st, "t1").D)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestXML2StationErrors(t *testing.T) {
	_, err := XML2Station([]byte("<station><track"))
	assert.Error(t, err)

	st, err := Read(s.NewReader(`<station name="x"><track id="a" position="3" connections="junk"/></station>`))
	require.NoError(t, err)
	assert.Empty(t, st.Tracks[0].Connections)
}

func TestFind(t *testing.T) {
	st := central()
	FindTrackById(st, "t2").Position = 7
	assert.Equal(t, 7, st.Tracks[1].Position)
	assert.Nil(t, FindTrackById(st, "p1"))
	assert.Equal(t, "1 & 2", FindPlatformById(st, "p1").Label)
	assert.Nil(t, FindPlatformById(st, "t1"))
}

func TestConnections(t *testing.T) {
	st := central()
	st.Tracks[1].Connections = trackconn.List{
		{StationTrack: 2, GateTrack: 1, Gate: 'A', Side: trackconn.SideWest},
		{StationTrack: 1, GateTrack: 0, Gate: 'A', Side: trackconn.SideWest},
	}
	assert.Equal(t, "(A,0,1,W),(B,3,1,E),(A,1,2,W)", st.Connections().String())
}
