package timetablelookup

import (
	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/oktf"
)

func (s Source) FareQuery(q query.Fare) (oktf.FareAmount, error) {
	return s.Fares.Resolve(q.DeparturePortRef, q.ArrivalPortRef, q.VesselType, q.Date), nil
}
