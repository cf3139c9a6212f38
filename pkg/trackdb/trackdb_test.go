package trackdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeff-blank/trackmap/pkg/trackconn"
)

func TestDSN(t *testing.T) {
	dsn := DSN(map[string]string{
		"type":         "postgres",
		"username":     "tracks",
		"password":     "secret",
		"host":         "db:5432",
		"name":         "trackmap",
		"connect_opts": "?sslmode=disable",
	})
	assert.Equal(t, "postgres://tracks:secret@db:5432/trackmap?sslmode=disable", dsn)
}

func TestConnect(t *testing.T) {
	_, err := Connect(map[string]string{})
	assert.Error(t, err)

	// sql.Open does not dial
	dbh, err := Connect(map[string]string{"type": "postgres", "username": "tracks", "host": "localhost", "name": "x"})
	require.NoError(t, err)
	assert.NoError(t, dbh.Close())
}

func TestCodes(t *testing.T) {
	i := trackconn.Info{StationTrack: 2, GateTrack: 1, Gate: 'C', Side: trackconn.SideEast}
	assert.Equal(t, "C", gateCode(i))
	assert.Equal(t, "E", sideCode(i))
	assert.Equal(t, i, toInfo(2, 1, "C", "E"))

	unset := trackconn.Info{StationTrack: 4}
	assert.Equal(t, "?", gateCode(unset))
	assert.Equal(t, "?", sideCode(unset))
	assert.Equal(t, unset, toInfo(4, 0, "?", "?"))
}

func TestSortRecords(t *testing.T) {
	records := []Record{
		{ID: 1, Info: trackconn.Info{StationTrack: 3, Gate: 'A'}},
		{ID: 2, Info: trackconn.Info{StationTrack: 1, Gate: 'B'}},
		{ID: 3, Info: trackconn.Info{StationTrack: 1, Gate: 'A', GateTrack: 2}},
	}
	SortRecords(records)
	assert.Equal(t, "(A,2,1,?),(B,0,1,?),(A,0,3,?)", Infos(records).String())
	assert.Equal(t, int64(3), records[0].ID)
}

func TestCompare(t *testing.T) {
	svg := trackconn.Parse("(A,0,1,W),(B,2,1,E),(C,1,2,W)")
	db := trackconn.Parse("(C,1,2,W),(A,0,1,E),(A,0,1,E)")

	d := Compare(svg, db)
	assert.False(t, d.Empty())
	assert.Equal(t, "(A,0,1,W),(B,2,1,E)", d.OnlySVG.String())
	assert.Equal(t, "(A,0,1,E)", d.OnlyDB.String())

	assert.True(t, Compare(svg, svg).Empty())
	assert.True(t, Compare(nil, nil).Empty())
}
