package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/okinavi/okinavi/pkg/dataaggregator/source/cachedresults"
	"github.com/okinavi/okinavi/pkg/dataaggregator/source/routeplanner"
	"github.com/okinavi/okinavi/pkg/dataaggregator/source/timetablelookup"
	"github.com/okinavi/okinavi/pkg/fares"
	"github.com/okinavi/okinavi/pkg/redis_client"
	"github.com/okinavi/okinavi/pkg/timetable"
	"github.com/rs/zerolog/log"
)

type Aggregator struct {
	Sources []DataSource
}

var globalAggregator Aggregator

// GlobalSetup registers the standard sources over the loaded stores. The route
// planner gets wrapped in the cached results source when Redis is connected.
func GlobalSetup(timetableStore *timetable.Store, faresResolver *fares.Resolver) {
	globalAggregator = Aggregator{}

	globalAggregator.RegisterSource(timetablelookup.Source{
		Timetable: timetableStore,
		Fares:     faresResolver,
	})

	plannerSource := routeplanner.Source{
		Timetable: timetableStore,
		Fares:     faresResolver,
	}

	if redis_client.Client != nil {
		cachedSource := cachedresults.Source{
			Underlying: plannerSource,
		}
		globalAggregator.RegisterSource(cachedSource.Setup())
	} else {
		globalAggregator.RegisterSource(plannerSource)
	}
}

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

func Lookup[T any](query any) (T, error) {
	var empty T

	for _, source := range globalAggregator.Sources {
		matches := false

		lookupType := reflect.TypeOf(*new(T))
		if lookupType.Kind() == reflect.Pointer {
			lookupType = lookupType.Elem()
		}

		for _, supportedType := range source.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if matches {
			var returnValue any
			var returnError error

			returnValue, returnError = source.Lookup(query)

			if returnValue == nil {
				return empty, returnError
			} else {
				return returnValue.(T), returnError
			}
		}
	}

	return empty, errors.New("Failed to find a matching Data Source for type")
}
