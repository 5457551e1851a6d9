package routeplanner

import (
	"sort"
	"time"

	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/oktf"
)

func (s Source) RoutePlanQuery(q query.RoutePlan) (*oktf.RoutePlanResults, error) {
	results := &oktf.RoutePlanResults{
		RoutePlans: []oktf.RoutePlan{},

		OriginPort:      *q.OriginPort,
		DestinationPort: *q.DestinationPort,
	}

	targetDateTime := q.TargetDateTime
	date := time.Date(
		targetDateTime.Year(), targetDateTime.Month(), targetDateTime.Day(), 0, 0, 0, 0, targetDateTime.Location(),
	)

	origin := q.OriginPort.PrimaryIdentifier
	destination := q.DestinationPort.PrimaryIdentifier

	// Direct sailings
	for _, trip := range s.Timetable.TripsBetween(origin, destination, date) {
		if !s.matchesMode(trip, date, targetDateTime, q.Mode) {
			continue
		}

		results.RoutePlans = append(results.RoutePlans, s.buildRoutePlan(date, trip))
	}

	// One transfer sailings. First legs leave the origin, second legs leave the
	// transfer port for the destination after the connection buffer has passed.
	var firstLegNotBefore time.Time
	if q.Mode == oktf.SearchModeDepartAfter {
		firstLegNotBefore = targetDateTime
	}

	for _, firstLeg := range s.Timetable.TripsFrom(origin, date, firstLegNotBefore) {
		transferPort := firstLeg.ArrivalPortRef
		if transferPort == origin || transferPort == destination {
			continue
		}

		earliestConnection := firstLeg.ArrivalOn(date).Add(MinimumConnectionTime)

		for _, secondLeg := range s.Timetable.TripsBetween(transferPort, destination, date) {
			if secondLeg.DepartureOn(date).Before(earliestConnection) {
				continue
			}

			if q.Mode == oktf.SearchModeArriveBefore && secondLeg.ArrivalOn(date).After(targetDateTime) {
				continue
			}

			results.RoutePlans = append(results.RoutePlans, s.buildRoutePlan(date, firstLeg, secondLeg))
		}
	}

	// Shortest journeys first, then earliest departure, then cheapest. The
	// tie-break order keeps repeated queries returning identical output.
	sort.SliceStable(results.RoutePlans, func(i, j int) bool {
		a := results.RoutePlans[i]
		b := results.RoutePlans[j]

		if a.Duration != b.Duration {
			return a.Duration < b.Duration
		}
		if !a.DepartureTime.Equal(b.DepartureTime) {
			return a.DepartureTime.Before(b.DepartureTime)
		}
		return a.TotalFare.Adult < b.TotalFare.Adult
	})

	if len(results.RoutePlans) > MaxRoutePlans {
		results.RoutePlans = results.RoutePlans[:MaxRoutePlans]
	}

	return results, nil
}

func (s Source) matchesMode(trip *oktf.Trip, date time.Time, targetDateTime time.Time, mode oktf.SearchMode) bool {
	switch mode {
	case oktf.SearchModeArriveBefore:
		return !trip.ArrivalOn(date).After(targetDateTime)
	default:
		return !trip.DepartureOn(date).Before(targetDateTime)
	}
}

func (s Source) buildRoutePlan(date time.Time, trips ...*oktf.Trip) oktf.RoutePlan {
	var segments []oktf.RoutePlanSegment

	totalFare := oktf.FareAmount{Known: true}

	for _, trip := range trips {
		trip.GetShip()

		fare := s.Fares.ResolveForTrip(trip, date)

		// A single unpriceable leg marks the whole plan fare unknown but the
		// plan itself is still returned
		if !fare.Known {
			totalFare.Known = false
		}

		totalFare.Adult += fare.Adult
		totalFare.Child += fare.Child

		segments = append(segments, oktf.RoutePlanSegment{
			Trip: *trip,

			OriginPortRef:      trip.DeparturePortRef,
			DestinationPortRef: trip.ArrivalPortRef,

			DepartureTime: trip.DepartureOn(date),
			ArrivalTime:   trip.ArrivalOn(date),

			Fare: fare,
		})
	}

	departureTime := segments[0].DepartureTime
	arrivalTime := segments[len(segments)-1].ArrivalTime

	return oktf.RoutePlan{
		Segments: segments,

		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		Duration:      arrivalTime.Sub(departureTime),

		TotalFare: totalFare,

		TransferCount: len(segments) - 1,
	}
}
