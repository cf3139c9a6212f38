// Package trackdb keeps station track connections in PostgreSQL:
//
//	create table track_connections (
//		id            serial primary key,
//		station       text not null,
//		station_track int not null,
//		gate          char(1) not null,
//		gate_track    int not null,
//		side          char(1) not null
//	);
//
// An unknown gate or side is stored as '?'.
package trackdb

import (
	"database/sql"
	"sort"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/jeff-blank/trackmap/pkg/trackconn"
)

type Record struct {
	ID int64
	trackconn.Info
}

// DSN builds the connection URL from the database section of the config.
func DSN(dbconfig map[string]string) string {
	return dbconfig["type"] + "://" + dbconfig["username"] + ":" +
		dbconfig["password"] + "@" + dbconfig["host"] + "/" +
		dbconfig["name"] + dbconfig["connect_opts"]
}

func Connect(dbconfig map[string]string) (*sql.DB, error) {
	driver := dbconfig["type"]
	if driver == "" {
		return nil, errors.New("database: no type")
	}
	dbh, err := sql.Open(driver, DSN(dbconfig))
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open()")
	}
	return dbh, nil
}

func gateCode(i trackconn.Info) string { return i.GateString() }

func sideCode(i trackconn.Info) string { return string(rune(i.Side.Code())) }

// toInfo turns stored gate and side codes back into a connection.
func toInfo(stationTrack, gateTrack int, gate, side string) trackconn.Info {
	i := trackconn.Info{StationTrack: stationTrack, GateTrack: gateTrack}
	if gate != "" && gate != "?" {
		i.Gate = gate[0]
	}
	if side != "" {
		i.Side = trackconn.SideFromCode(side[0])
	}
	return i
}

// Load returns the stored connections of station, sorted.
func Load(dbh *sql.DB, station string) ([]Record, error) {
	rows, err := dbh.Query(`select
	id, station_track, gate, gate_track, side
from
	track_connections
where
	station = $1`, station)
	if err != nil {
		return nil, errors.Wrapf(err, "Load(%s): dbh.Query()", station)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			id                      int64
			stationTrack, gateTrack int
			gate, side              string
		)
		if err := rows.Scan(&id, &stationTrack, &gate, &gateTrack, &side); err != nil {
			return nil, errors.Wrapf(err, "Load(%s): rows.Scan()", station)
		}
		records = append(records, Record{ID: id, Info: toInfo(stationTrack, gateTrack, gate, side)})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "Load(%s): rows.Err()", station)
	}
	SortRecords(records)
	return records, nil
}

// SortRecords orders records by their connection.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool { return trackconn.Less(records[i].Info, records[j].Info) })
}

// Infos drops the row ids.
func Infos(records []Record) trackconn.List {
	l := make(trackconn.List, len(records))
	for i, r := range records {
		l[i] = r.Info
	}
	return l
}

// Replace swaps the stored connections of station for infos in one
// transaction.
func Replace(dbh *sql.DB, station string, infos []trackconn.Info) (err error) {
	tx, err := dbh.Begin()
	if err != nil {
		return errors.Wrap(err, "Replace(): begin")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`delete from track_connections where station = $1`, station); err != nil {
		return errors.Wrapf(err, "Replace(%s): delete", station)
	}
	stmt, err := tx.Prepare(`insert into track_connections
	(station, station_track, gate, gate_track, side)
values
	($1, $2, $3, $4, $5)`)
	if err != nil {
		return errors.Wrapf(err, "Replace(%s): prepare insert", station)
	}
	defer stmt.Close()

	for _, i := range infos {
		res, err := stmt.Exec(station, i.StationTrack, gateCode(i), i.GateTrack, sideCode(i))
		if err != nil {
			return errors.Wrapf(err, "Replace(%s): insert %s", station, i)
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return errors.Wrapf(err, "Replace(%s): insert %s: can't get # rows affected", station, i)
		}
		if ra != 1 {
			return errors.Errorf("Replace(%s): insert %s: %d rows affected", station, i, ra)
		}
	}
	return errors.Wrapf(tx.Commit(), "Replace(%s): commit", station)
}

// Diff lists the connections found on only one side.
type Diff struct {
	OnlySVG trackconn.List
	OnlyDB  trackconn.List
}

func (d Diff) Empty() bool {
	return len(d.OnlySVG) == 0 && len(d.OnlyDB) == 0
}

// Compare matches connections from the SVG against those from the database
// by name.
func Compare(svg, db trackconn.List) Diff {
	var d Diff
	for _, i := range svg {
		if !db.Contains(i) && !d.OnlySVG.Contains(i) {
			d.OnlySVG = append(d.OnlySVG, i)
		}
	}
	for _, i := range db {
		if !svg.Contains(i) && !d.OnlyDB.Contains(i) {
			d.OnlyDB = append(d.OnlyDB, i)
		}
	}
	d.OnlySVG.Sort()
	d.OnlyDB.Sort()
	return d
}
