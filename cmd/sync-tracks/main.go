package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jeff-blank/trackmap/pkg/config"
	"github.com/jeff-blank/trackmap/pkg/stationinfo"
	"github.com/jeff-blank/trackmap/pkg/svgdoc"
	"github.com/jeff-blank/trackmap/pkg/trackconn"
	"github.com/jeff-blank/trackmap/pkg/trackdb"
)

// stationConnections gathers the connections of every set of a station,
// from the info file when there is one and from the drawing otherwise.
func stationConnections(cfg *config.Config, station string) trackconn.List {
	var all trackconn.List

	for _, set := range cfg.Stations[station] {
		var st *stationinfo.Station

		if _, err := os.Stat(set.InfoFile); len(set.InfoFile) > 0 && err == nil {
			st, err = stationinfo.ReadFile(set.InfoFile)
			if err != nil {
				log.Fatal(err)
			}
		} else {
			doc, err := svgdoc.LoadFile(set.InputFile)
			if err != nil {
				log.Fatal(err)
			}
			st = doc.Extract(station, cfg.Settings(set).DefaultStrokeWidth)
		}

		for _, i := range st.Connections() {
			if !all.Contains(i) {
				all = append(all, i)
			}
		}
	}
	all.Sort()
	return all
}

func main() {
	configFile := flag.String("conf", "trackmap.yml", "configuration file")
	logDebug := flag.Bool("d", false, "debug-level logging")
	dryRun := flag.Bool("n", false, "show what would be stored without touching the database")
	flag.Parse()

	if *logDebug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	cfg := config.New(*configFile)

	if *dryRun {
		for station := range cfg.Stations {
			log.Infof("%s: %s", station, stationConnections(cfg, station))
		}
		return
	}

	dbh, err := trackdb.Connect(cfg.DbParam)
	if err != nil {
		log.Fatal(err)
	}
	defer dbh.Close()

	for station := range cfg.Stations {
		conns := stationConnections(cfg, station)
		log.Debugf("%s: %s", station, conns)
		if err := trackdb.Replace(dbh, station, conns); err != nil {
			log.Fatal(err)
		}
		log.Infof("%s: %d connections stored", station, len(conns))
	}
}
