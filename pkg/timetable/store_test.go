package timetable_test

import (
	"testing"
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/okinavi/okinavi/pkg/timetable"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, value string) time.Time {
	parsed, err := time.Parse(oktf.ClockTimeFormat, value)
	require.NoError(t, err)

	return parsed
}

func mustDate(t *testing.T, value string) time.Time {
	parsed, err := time.Parse(oktf.DateFormat, value)
	require.NoError(t, err)

	return parsed
}

func testTrip(t *testing.T, id string, departurePort string, arrivalPort string, departureTime string, arrivalTime string, status oktf.TripStatus) *oktf.Trip {
	return &oktf.Trip{
		PrimaryIdentifier: id,
		ShipRef:           "OKI:SHIP:FERRY_DOZEN",
		DeparturePortRef:  departurePort,
		ArrivalPortRef:    arrivalPort,
		DepartureTime:     mustClock(t, departureTime),
		ArrivalTime:       mustClock(t, arrivalTime),
		ValidFrom:         mustDate(t, "2025-04-01"),
		ValidTo:           mustDate(t, "2026-03-31"),
		Status:            status,
	}
}

func testStore(t *testing.T) *timetable.Store {
	return timetable.NewStore([]*oktf.Trip{
		testTrip(t, "OKI:TRIP:D204", "OKI:PORT:BEPPU", "OKI:PORT:HISHIURA", "08:40", "09:00", oktf.TripStatusScheduled),
		testTrip(t, "OKI:TRIP:I302", "OKI:PORT:BEPPU", "OKI:PORT:HISHIURA", "07:05", "07:20", oktf.TripStatusScheduled),
		testTrip(t, "OKI:TRIP:X900", "OKI:PORT:BEPPU", "OKI:PORT:HISHIURA", "06:00", "06:20", oktf.TripStatusCancelled),
		testTrip(t, "OKI:TRIP:D202", "OKI:PORT:BEPPU", "OKI:PORT:KURII", "07:40", "08:00", oktf.TripStatusScheduled),
		testTrip(t, "OKI:TRIP:D201", "OKI:PORT:HISHIURA", "OKI:PORT:BEPPU", "07:10", "07:30", oktf.TripStatusSuspended),
	})
}

// TestTripsBetween checks the port pair filter, the cancelled exclusion and
// the ascending departure ordering.
func TestTripsBetween(t *testing.T) {
	store := testStore(t)
	date := mustDate(t, "2025-11-02")

	trips := store.TripsBetween("OKI:PORT:BEPPU", "OKI:PORT:HISHIURA", date)

	require.Len(t, trips, 2)
	require.Equal(t, "OKI:TRIP:I302", trips[0].PrimaryIdentifier)
	require.Equal(t, "OKI:TRIP:D204", trips[1].PrimaryIdentifier)
}

// TestTripsBetween_outsideValidity: a date outside every validity window
// yields an empty result, not an error.
func TestTripsBetween_outsideValidity(t *testing.T) {
	store := testStore(t)

	trips := store.TripsBetween("OKI:PORT:BEPPU", "OKI:PORT:HISHIURA", mustDate(t, "2026-04-01"))

	require.Empty(t, trips)
}

// TestTripsBetween_unknownPort: an unknown port code simply matches nothing.
func TestTripsBetween_unknownPort(t *testing.T) {
	store := testStore(t)

	trips := store.TripsBetween("OKI:PORT:ATLANTIS", "OKI:PORT:HISHIURA", mustDate(t, "2025-11-02"))

	require.Empty(t, trips)
}

func TestTripsFrom(t *testing.T) {
	store := testStore(t)
	date := mustDate(t, "2025-11-02")

	trips := store.TripsFrom("OKI:PORT:BEPPU", date, time.Time{})

	require.Len(t, trips, 3)
	require.Equal(t, "OKI:TRIP:I302", trips[0].PrimaryIdentifier)
	require.Equal(t, "OKI:TRIP:D202", trips[1].PrimaryIdentifier)
	require.Equal(t, "OKI:TRIP:D204", trips[2].PrimaryIdentifier)
}

// TestTripsFrom_notBefore: the optional bound keeps only trips departing at or
// after the given moment.
func TestTripsFrom_notBefore(t *testing.T) {
	store := testStore(t)
	date := mustDate(t, "2025-11-02")

	trips := store.TripsFrom("OKI:PORT:BEPPU", date, time.Date(2025, 11, 2, 7, 40, 0, 0, time.UTC))

	require.Len(t, trips, 2)
	require.Equal(t, "OKI:TRIP:D202", trips[0].PrimaryIdentifier)
	require.Equal(t, "OKI:TRIP:D204", trips[1].PrimaryIdentifier)
}

// TestDeparturesFrom keeps cancelled sailings for the departure board while
// the search lookups exclude them.
func TestDeparturesFrom(t *testing.T) {
	store := testStore(t)
	date := mustDate(t, "2025-11-02")

	trips := store.DeparturesFrom("OKI:PORT:BEPPU", date)

	require.Len(t, trips, 4)
	require.Equal(t, "OKI:TRIP:X900", trips[0].PrimaryIdentifier)
}
