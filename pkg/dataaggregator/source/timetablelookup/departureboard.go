package timetablelookup

import (
	"time"

	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/oktf"
	iso8601 "github.com/senseyeio/duration"
)

func (s Source) DepartureBoardQuery(q query.DepartureBoard) ([]*oktf.DepartureBoard, error) {
	trips := s.Timetable.DeparturesFrom(q.Port.PrimaryIdentifier, q.StartDateTime)

	departureBoard := oktf.GenerateDepartureBoardFromTrips(trips, q.StartDateTime)

	// If todays board doesnt fill the requested count then roll onto the start
	// of tomorrow and append those sailings
	if len(departureBoard) < q.Count {
		nextDayDuration, _ := iso8601.ParseISO8601("P1D")
		dayAfterDateTime := nextDayDuration.Shift(q.StartDateTime)
		dayAfterDateTime = time.Date(
			dayAfterDateTime.Year(), dayAfterDateTime.Month(), dayAfterDateTime.Day(), 0, 0, 0, 0, dayAfterDateTime.Location(),
		)

		tomorrowTrips := s.Timetable.DeparturesFrom(q.Port.PrimaryIdentifier, dayAfterDateTime)
		departureBoard = append(departureBoard, oktf.GenerateDepartureBoardFromTrips(tomorrowTrips, dayAfterDateTime)...)
	}

	if q.Count > 0 && len(departureBoard) > q.Count {
		departureBoard = departureBoard[:q.Count]
	}

	return departureBoard, nil
}
