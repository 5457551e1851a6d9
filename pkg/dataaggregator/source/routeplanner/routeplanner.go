package routeplanner

import (
	"reflect"
	"time"

	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/dataaggregator/source"
	"github.com/okinavi/okinavi/pkg/fares"
	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/okinavi/okinavi/pkg/timetable"
)

// MinimumConnectionTime is the buffer a passenger needs between arriving at a
// transfer port and boarding the next sailing.
const MinimumConnectionTime = 10 * time.Minute

// MaxRoutePlans caps the merged result set for well connected port pairs.
const MaxRoutePlans = 20

type Source struct {
	Timetable *timetable.Store
	Fares     *fares.Resolver
}

func (s Source) GetName() string {
	return "Route Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(oktf.RoutePlanResults{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.RoutePlan:
		return s.RoutePlanQuery(q.(query.RoutePlan))
	default:
		return nil, source.UnsupportedSourceError
	}
}
