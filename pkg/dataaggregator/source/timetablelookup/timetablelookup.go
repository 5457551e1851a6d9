package timetablelookup

import (
	"reflect"

	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/dataaggregator/source"
	"github.com/okinavi/okinavi/pkg/fares"
	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/okinavi/okinavi/pkg/timetable"
)

type Source struct {
	Timetable *timetable.Store
	Fares     *fares.Resolver
}

func (s Source) GetName() string {
	return "Timetable Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(oktf.Port{}),
		reflect.TypeOf([]*oktf.DepartureBoard{}),
		reflect.TypeOf(oktf.FareAmount{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Port:
		return s.PortQuery(q.(query.Port))
	case query.DepartureBoard:
		return s.DepartureBoardQuery(q.(query.DepartureBoard))
	case query.Fare:
		return s.FareQuery(q.(query.Fare))
	default:
		return nil, source.UnsupportedSourceError
	}
}
