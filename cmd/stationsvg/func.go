package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jeff-blank/trackmap/pkg/config"
	"github.com/jeff-blank/trackmap/pkg/stationinfo"
	"github.com/jeff-blank/trackmap/pkg/svgdoc"
	"github.com/jeff-blank/trackmap/pkg/svgpath"
	"github.com/jeff-blank/trackmap/pkg/trackconn"
	"github.com/jeff-blank/trackmap/pkg/trackdb"
)

// processSet runs one station set through the pipeline: load, optional
// retagging from the info file, id assignment, baking, splits, extraction,
// and writing both outputs.
func processSet(cfg *config.Config, station string, set config.StationSet, apply bool) (*stationinfo.Station, error) {
	settings := cfg.Settings(set)

	doc, err := svgdoc.LoadFile(set.InputFile)
	if err != nil {
		return nil, err
	}

	if apply && len(set.InfoFile) > 0 {
		prev, err := stationinfo.ReadFile(set.InfoFile)
		if err != nil {
			return nil, err
		}
		applied, missing := doc.Apply(prev)
		log.Infof("%s: %d elements tagged from '%s'", set.InputFile, applied, set.InfoFile)
		for _, id := range missing {
			log.Warnf("%s: '%s' is in '%s' but not in the drawing", set.InputFile, id, set.InfoFile)
		}
	}

	if settings.AssignIds {
		n := doc.AssignIDs(cfg.General["id_prefix"])
		log.Debugf("%s: %d ids assigned", set.InputFile, n)
	} else {
		for id, n := range doc.DuplicateIDs() {
			log.Warnf("%s: id '%s' is used %d times", set.InputFile, id, n)
		}
	}

	if settings.BakeTransforms {
		n := doc.BakeTransforms()
		log.Debugf("%s: %d elements baked", set.InputFile, n)
	}

	for _, sp := range set.Splits {
		newId, ok := doc.SplitElement(sp.Id, svgpath.Pt(sp.X, sp.Y), settings.SplitThreshold)
		if !ok {
			log.Warnf("%s: split of '%s' at (%g,%g) not done", set.InputFile, sp.Id, sp.X, sp.Y)
			continue
		}
		log.Infof("%s: split '%s' off '%s'", set.InputFile, newId, sp.Id)
	}

	st := doc.Extract(station, settings.DefaultStrokeWidth)
	log.Infof("%s: %d platforms, %d tracks", set.InputFile, len(st.Platforms), len(st.Tracks))

	if len(set.InfoFile) > 0 {
		if err := stationinfo.WriteFile(set.InfoFile, st); err != nil {
			return nil, err
		}
	}
	if len(set.OutputFile) > 0 {
		if err := doc.WriteFile(set.OutputFile); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// reportSet prints one line per tagged element of the set's input file.
func reportSet(station string, set config.StationSet) error {
	f, err := os.Open(set.InputFile)
	if err != nil {
		return errors.Wrapf(err, "can't read '%s'", set.InputFile)
	}
	defer f.Close()

	tagged, err := svgdoc.Report(f)
	if err != nil {
		return errors.Wrapf(err, "'%s'", set.InputFile)
	}
	for _, t := range tagged {
		conns := trackconn.Parse(t.Connections)
		fmt.Printf("%s\t%s\t%s\t%s\tlabel=%q\tposition=%q\tconnections=%s\tstroke-width=%g\n",
			station, set.InputFile, t.Tag, t.ID, t.Label, t.Position, conns, t.StrokeWidth)
	}
	return nil
}

func compareStation(dbh *sql.DB, station, source string, conns trackconn.List) error {
	records, err := trackdb.Load(dbh, station)
	if err != nil {
		return err
	}
	diff := trackdb.Compare(conns, trackdb.Infos(records))
	if diff.Empty() {
		log.Infof("%s: %d connections match the database", source, len(conns))
		return nil
	}
	for _, i := range diff.OnlySVG {
		log.Warnf("%s: %s not in database", source, i)
	}
	for _, i := range diff.OnlyDB {
		log.Warnf("%s: %s in database only", source, i)
	}
	return nil
}
