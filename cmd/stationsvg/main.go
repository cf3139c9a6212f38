package main

import (
	"database/sql"
	"flag"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/jeff-blank/trackmap/pkg/config"
	"github.com/jeff-blank/trackmap/pkg/trackdb"
)

func main() {

	var (
		wg  sync.WaitGroup
		dbh *sql.DB
		err error
	)

	configFile := flag.String("conf", "trackmap.yml", "configuration file")
	logDebug := flag.Bool("d", false, "debug-level logging")
	onlyStation := flag.String("station", "", "process only this station")
	report := flag.Bool("report", false, "list the tagged elements of each input file and write nothing")
	compare := flag.Bool("compare", false, "compare extracted track connections with the database")
	apply := flag.Bool("apply", false, "tag each input from its existing info file before extracting")
	flag.Parse()

	if *logDebug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	cfg := config.New(*configFile)

	if *compare && !*report {
		dbh, err = trackdb.Connect(cfg.DbParam)
		if err != nil {
			log.Fatal(err)
		}
		defer dbh.Close()
	}

	// stable order for the report output
	stations := make([]string, 0, len(cfg.Stations))
	for station := range cfg.Stations {
		stations = append(stations, station)
	}
	sort.Strings(stations)

	for _, station := range stations {
		if len(*onlyStation) > 0 && station != *onlyStation {
			continue
		}
		if *report {
			for _, set := range cfg.Stations[station] {
				if err := reportSet(station, set); err != nil {
					log.Error(err)
				}
			}
			continue
		}

		for _, set := range cfg.Stations[station] {
			wg.Add(1)
			go func(station string, set config.StationSet) {
				defer wg.Done()

				st, err := processSet(cfg, station, set, *apply)
				if err != nil {
					log.Errorf("%s: %v", station, err)
					return
				}
				if dbh != nil {
					if err := compareStation(dbh, station, set.InputFile, st.Connections()); err != nil {
						log.Errorf("%s: %v", station, err)
					}
				}
			}(station, set)
		}
	}

	wg.Wait()
}
