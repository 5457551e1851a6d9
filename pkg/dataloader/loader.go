package dataloader

import (
	"errors"
	"fmt"
	"sync"

	"github.com/okinavi/okinavi/pkg/dataloader/formats/okifare"
	"github.com/okinavi/okinavi/pkg/dataloader/formats/okitimetable"
	"github.com/okinavi/okinavi/pkg/fares"
	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/okinavi/okinavi/pkg/timetable"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/singleflight"
)

// Loader turns the registered datasets into a Repository. Concurrent Load
// calls share a single in-flight fetch, so the data is only ever loaded once
// no matter how many callers race it.
type Loader struct {
	group    singleflight.Group
	datasets []DataSet

	mutex      sync.RWMutex
	repository *Repository
}

func NewLoader() *Loader {
	return &Loader{}
}

// NewLoaderWithDatasets bypasses the registered dataset directory and loads
// the given datasets instead.
func NewLoaderWithDatasets(datasets []DataSet) *Loader {
	return &Loader{datasets: datasets}
}

func (l *Loader) Load() (*Repository, error) {
	l.mutex.RLock()
	if l.repository != nil {
		defer l.mutex.RUnlock()
		return l.repository, nil
	}
	l.mutex.RUnlock()

	value, err, _ := l.group.Do("repository", func() (interface{}, error) {
		datasets := l.datasets
		if datasets == nil {
			datasets = GetRegisteredDataSets()
		}

		repository, err := LoadDatasets(datasets)
		if err != nil {
			return nil, err
		}

		l.mutex.Lock()
		l.repository = repository
		l.mutex.Unlock()

		return repository, nil
	})

	if err != nil {
		return nil, fmt.Errorf("data load failure: %w", err)
	}

	return value.(*Repository), nil
}

// Refresh drops the cached repository so the next Load fetches fresh data.
func (l *Loader) Refresh() {
	l.mutex.Lock()
	l.repository = nil
	l.mutex.Unlock()
}

// LoadDatasets fetches & parses every dataset, independent datasets in
// parallel, and assembles the stores. Any failed dataset fails the whole load
// so a search never runs over partial data.
func LoadDatasets(datasets []DataSet) (*Repository, error) {
	if len(datasets) == 0 {
		return nil, errors.New("No datasets registered")
	}

	var mutex sync.Mutex
	var trips []*oktf.Trip
	var fareVersions []*oktf.FareVersion
	var aliasGroups []oktf.PortAliasGroup

	timetableSeen := false
	fareMasterSeen := false

	loadPool := pool.New().WithErrors()

	for _, dataset := range datasets {
		loadPool.Go(func() error {
			log.Info().Str("dataset", dataset.Identifier).Str("format", string(dataset.Format)).Msg("Loading dataset")

			file, err := openDataset(dataset.Source)
			if err != nil {
				return fmt.Errorf("dataset %s: %w", dataset.Identifier, err)
			}
			defer file.Close()

			switch dataset.Format {
			case DataSetFormatOkiTimetable:
				timetableData := &okitimetable.TimetableData{}
				if err := timetableData.ParseFile(file); err != nil {
					return fmt.Errorf("dataset %s: %w", dataset.Identifier, err)
				}

				mutex.Lock()
				trips = append(trips, timetableData.Trips()...)
				timetableSeen = true
				mutex.Unlock()
			case DataSetFormatOkiFareMaster:
				fareMasterData := &okifare.FareMasterData{}
				if err := fareMasterData.ParseFile(file); err != nil {
					return fmt.Errorf("dataset %s: %w", dataset.Identifier, err)
				}

				mutex.Lock()
				fareVersions = append(fareVersions, fareMasterData.Versions()...)
				aliasGroups = append(aliasGroups, fareMasterData.AliasGroups()...)
				fareMasterSeen = true
				mutex.Unlock()
			default:
				return fmt.Errorf("dataset %s: unrecognised format %s", dataset.Identifier, dataset.Format)
			}

			return nil
		})
	}

	if err := loadPool.Wait(); err != nil {
		return nil, err
	}

	if !timetableSeen {
		return nil, errors.New("No timetable dataset loaded")
	}
	if !fareMasterSeen {
		return nil, errors.New("No fare master dataset loaded")
	}

	log.Info().Int("trips", len(trips)).Int("fare_versions", len(fareVersions)).Msg("Datasets loaded")

	return &Repository{
		Timetable: timetable.NewStore(trips),
		Fares:     fares.NewResolver(fareVersions, aliasGroups),
	}, nil
}
