package okitimetable_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/okinavi/okinavi/pkg/dataloader/formats/okitimetable"
	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	file, err := os.Open("testdata/timetable.json")
	require.NoError(t, err)
	defer file.Close()

	timetableData := &okitimetable.TimetableData{}
	require.NoError(t, timetableData.ParseFile(file))

	require.Len(t, timetableData.Records, 5)
}

// TestTrips converts the raw records, mapping codes onto canonical
// identifiers and dropping the two invalid records.
func TestTrips(t *testing.T) {
	file, err := os.Open("testdata/timetable.json")
	require.NoError(t, err)
	defer file.Close()

	timetableData := &okitimetable.TimetableData{}
	require.NoError(t, timetableData.ParseFile(file))

	trips := timetableData.Trips()
	require.Len(t, trips, 3)

	first := trips[0]
	require.Equal(t, "OKI:TRIP:T001", first.PrimaryIdentifier)
	require.Equal(t, "OKI:TRIP:T002", first.NextTripRef)
	require.Equal(t, "OKI:SHIP:FERRY_KUNIGA", first.ShipRef)
	require.Equal(t, "OKI:PORT:SHICHIRUI", first.DeparturePortRef)
	require.Equal(t, "OKI:PORT:BEPPU", first.ArrivalPortRef)
	require.Equal(t, "09:00", first.DepartureTime.Format(oktf.ClockTimeFormat))
	require.Equal(t, oktf.TripStatus(oktf.TripStatusScheduled), first.Status)

	require.Equal(t, oktf.TripStatus(oktf.TripStatusSuspended), trips[1].Status)
	require.Empty(t, trips[1].NextTripRef)

	nightCrossing := trips[2]
	require.Equal(t, oktf.TripStatus(oktf.TripStatusCancelled), nightCrossing.Status)

	date, err := time.Parse(oktf.DateFormat, "2025-11-02")
	require.NoError(t, err)
	require.True(t, nightCrossing.ArrivalOn(date).After(nightCrossing.DepartureOn(date)))
}

func TestParseFile_invalidJSON(t *testing.T) {
	timetableData := &okitimetable.TimetableData{}
	err := timetableData.ParseFile(strings.NewReader("{not json"))

	require.Error(t, err)
	require.ErrorContains(t, err, "parse timetable")
}
