package timetable

import (
	"sort"
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/okinavi/okinavi/pkg/util"
)

// Store answers trip lookups over an immutable set of loaded trips.
// It never mutates after construction so concurrent searches can share one
// instance without locking.
type Store struct {
	trips []*oktf.Trip
}

func NewStore(trips []*oktf.Trip) *Store {
	return &Store{
		trips: trips,
	}
}

func (s *Store) AllTrips() []*oktf.Trip {
	return s.trips
}

// TripsBetween returns every non-cancelled trip from departure to arrival
// valid on the date, ascending by absolute departure time. An unknown port
// simply matches nothing.
func (s *Store) TripsBetween(departurePortRef string, arrivalPortRef string, date time.Time) []*oktf.Trip {
	trips := s.tripsMatching(date, func(trip *oktf.Trip) bool {
		return trip.DeparturePortRef == departurePortRef && trip.ArrivalPortRef == arrivalPortRef
	})

	return trips
}

// TripsFrom returns every non-cancelled trip leaving the port on the date,
// optionally departing no earlier than notBefore.
func (s *Store) TripsFrom(departurePortRef string, date time.Time, notBefore time.Time) []*oktf.Trip {
	trips := s.tripsMatching(date, func(trip *oktf.Trip) bool {
		return trip.DeparturePortRef == departurePortRef
	})

	if !notBefore.IsZero() {
		util.InPlaceFilter(&trips, func(trip *oktf.Trip) bool {
			return !trip.DepartureOn(date).Before(notBefore)
		})
	}

	return trips
}

// DeparturesFrom is the departure board variant of TripsFrom. Cancelled trips
// are kept so boards can still display them.
func (s *Store) DeparturesFrom(departurePortRef string, date time.Time) []*oktf.Trip {
	var trips []*oktf.Trip

	for _, trip := range s.trips {
		if trip.DeparturePortRef == departurePortRef && trip.RunsOn(date) {
			trips = append(trips, trip)
		}
	}

	sortByDeparture(trips, date)

	return trips
}

func (s *Store) tripsMatching(date time.Time, predicate func(*oktf.Trip) bool) []*oktf.Trip {
	var trips []*oktf.Trip

	for _, trip := range s.trips {
		if trip.Status == oktf.TripStatusCancelled {
			continue
		}

		if !trip.RunsOn(date) {
			continue
		}

		if predicate(trip) {
			trips = append(trips, trip)
		}
	}

	sortByDeparture(trips, date)

	return trips
}

func sortByDeparture(trips []*oktf.Trip, date time.Time) {
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].DepartureOn(date).Before(trips[j].DepartureOn(date))
	})
}
