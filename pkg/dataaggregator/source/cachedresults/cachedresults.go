package cachedresults

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/dataaggregator/source"
	"github.com/okinavi/okinavi/pkg/dataaggregator/source/routeplanner"
	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/rs/zerolog/log"
)

// Source caches serialized route plan results in front of the route planner.
// Identical queries inside the cache window skip the search entirely.
type Source struct {
	Underlying routeplanner.Source

	Cache *Cache
}

func (s Source) GetName() string {
	return "Cached Results"
}

func (s Source) Supports() []reflect.Type {
	return s.Underlying.Supports()
}

func (s Source) Setup() Source {
	cache := &Cache{}
	cache.Setup()

	s.Cache = cache

	return s
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.RoutePlan:
		routePlanQuery := q.(query.RoutePlan)
		cacheKey := routePlanQuery.CacheKey()

		cachedValue, err := s.Cache.Cache.Get(context.Background(), cacheKey)
		if err == nil && cachedValue != "" {
			var results *oktf.RoutePlanResults
			if err := json.Unmarshal([]byte(cachedValue), &results); err == nil {
				return results, nil
			}

			log.Error().Err(err).Str("key", cacheKey).Msg("Failed to decode cached route plan")
		}

		value, err := s.Underlying.Lookup(q)
		if err != nil {
			return value, err
		}

		encoded, marshalErr := json.Marshal(value)
		if marshalErr == nil {
			if setErr := s.Cache.Cache.Set(context.Background(), cacheKey, string(encoded)); setErr != nil {
				log.Error().Err(setErr).Str("key", cacheKey).Msg("Failed to cache route plan")
			}
		}

		return value, nil
	default:
		return nil, source.UnsupportedSourceError
	}
}
