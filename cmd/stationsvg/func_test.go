package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeff-blank/trackmap/pkg/config"
	"github.com/jeff-blank/trackmap/pkg/stationinfo"
)

const drawing = `<svg xmlns="http://www.w3.org/2000/svg">` +
	`<g transform="translate(0,10)" stroke-width="2">` +
	`<line id="t1" data-track-position="1" data-track-connections="(A,0,1,W)" x1="0" y1="0" x2="20" y2="0"/>` +
	`<rect data-platform-label="1" x="0" y="2" width="20" height="4"/>` +
	`</g></svg>`

func TestProcessSet(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	require.NoError(t, ioutil.WriteFile(in, []byte(drawing), 0644))

	yes := true
	cfg := &config.Config{
		General:  map[string]string{"id_prefix": "east"},
		Defaults: config.Defaults{BakeTransforms: &yes, AssignIds: &yes},
	}
	set := config.StationSet{
		InputFile:  in,
		OutputFile: filepath.Join(dir, "out.svg"),
		InfoFile:   filepath.Join(dir, "out.xml"),
		Splits:     []config.Split{{Id: "t1", X: 8, Y: 10.5}},
	}

	st, err := processSet(cfg, "East", set, false)
	require.NoError(t, err)
	require.Len(t, st.Tracks, 2)
	assert.Equal(t, "t1", st.Tracks[0].Id)
	assert.Equal(t, "M 0 10 L 8 10", st.Tracks[0].D)
	assert.Equal(t, "t1-split", st.Tracks[1].Id)
	assert.Equal(t, "M 8 10 L 20 10", st.Tracks[1].D)
	assert.Equal(t, 2.0, st.Tracks[1].StrokeWidth)
	require.Len(t, st.Platforms, 1)
	assert.Equal(t, "1", st.Platforms[0].Label)

	written, err := stationinfo.ReadFile(set.InfoFile)
	require.NoError(t, err)
	assert.Equal(t, st.Tracks, written.Tracks)

	// a second run over the output changes nothing more
	set2 := config.StationSet{InputFile: set.OutputFile, InfoFile: set.InfoFile}
	again, err := processSet(cfg, "East", set2, true)
	require.NoError(t, err)
	assert.Equal(t, st.Tracks, again.Tracks)
	assert.Equal(t, st.Platforms, again.Platforms)
}

func TestProcessSetMissingInput(t *testing.T) {
	_, err := processSet(&config.Config{}, "x", config.StationSet{InputFile: "/nonexistent/in.svg"}, false)
	assert.Error(t, err)
}
