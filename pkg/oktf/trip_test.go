package oktf_test

import (
	"testing"
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
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

func TestTripRunsOn(t *testing.T) {
	trip := &oktf.Trip{
		PrimaryIdentifier: "OKI:TRIP:T001",
		ValidFrom:         mustDate(t, "2025-04-01"),
		ValidTo:           mustDate(t, "2026-03-31"),
	}

	require.True(t, trip.RunsOn(mustDate(t, "2025-04-01")), "first valid day is inclusive")
	require.True(t, trip.RunsOn(mustDate(t, "2026-03-31")), "last valid day is inclusive")
	require.True(t, trip.RunsOn(mustDate(t, "2025-11-02")))

	require.False(t, trip.RunsOn(mustDate(t, "2025-03-31")))
	require.False(t, trip.RunsOn(mustDate(t, "2026-04-01")))
}

// TestTripRunsOn_timezone checks that a date expressed in JST still counts as
// its own calendar day against the UTC-parsed validity bounds.
func TestTripRunsOn_timezone(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	trip := &oktf.Trip{
		ValidFrom: mustDate(t, "2025-04-01"),
		ValidTo:   mustDate(t, "2026-03-31"),
	}

	require.True(t, trip.RunsOn(time.Date(2025, 4, 1, 0, 0, 0, 0, jst)))
	require.False(t, trip.RunsOn(time.Date(2025, 3, 31, 23, 0, 0, 0, jst)))
}

func TestTripArrivalOn(t *testing.T) {
	date := mustDate(t, "2025-11-02")

	trip := &oktf.Trip{
		DepartureTime: mustClock(t, "11:35"),
		ArrivalTime:   mustClock(t, "11:55"),
	}

	require.Equal(t, time.Date(2025, 11, 2, 11, 35, 0, 0, time.UTC), trip.DepartureOn(date))
	require.Equal(t, time.Date(2025, 11, 2, 11, 55, 0, 0, time.UTC), trip.ArrivalOn(date))
}

// TestTripArrivalOn_midnightRollover: an arrival clock time earlier than the
// departure means the sailing arrives the next calendar day.
func TestTripArrivalOn_midnightRollover(t *testing.T) {
	date := mustDate(t, "2025-11-02")

	trip := &oktf.Trip{
		DepartureTime: mustClock(t, "23:30"),
		ArrivalTime:   mustClock(t, "00:45"),
	}

	departure := trip.DepartureOn(date)
	arrival := trip.ArrivalOn(date)

	require.Equal(t, time.Date(2025, 11, 3, 0, 45, 0, 0, time.UTC), arrival)
	require.True(t, arrival.After(departure))
}

func TestVesselTypeForShip(t *testing.T) {
	require.Equal(t, oktf.VesselType(oktf.VesselTypeHighspeed), oktf.VesselTypeForShip("OKI:SHIP:RAINBOWJET"))
	require.Equal(t, oktf.VesselType(oktf.VesselTypeFerry), oktf.VesselTypeForShip("OKI:SHIP:FERRY_KUNIGA"))
	require.Equal(t, oktf.VesselType(oktf.VesselTypeLocal), oktf.VesselTypeForShip("OKI:SHIP:ISOKAZE"))
	require.Equal(t, oktf.VesselType(oktf.VesselTypeUnknown), oktf.VesselTypeForShip("OKI:SHIP:NO_SUCH_SHIP"))
}
