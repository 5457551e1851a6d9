package timetablelookup

import (
	"testing"
	"time"

	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/fares"
	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/okinavi/okinavi/pkg/timetable"
	"github.com/stretchr/testify/assert"
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

func boardFixtureSource(t *testing.T) Source {
	validFrom := mustDate(t, "2025-04-01")
	validTo := mustDate(t, "2026-03-31")

	saigoTrip := func(identifier string, ship string, departure string, arrival string, status oktf.TripStatus) *oktf.Trip {
		return &oktf.Trip{
			PrimaryIdentifier: "OKI:TRIP:" + identifier,
			ShipRef:           "OKI:SHIP:" + ship,
			DeparturePortRef:  "OKI:PORT:SAIGO",
			ArrivalPortRef:    "OKI:PORT:SHICHIRUI",
			DepartureTime:     mustClock(t, departure),
			ArrivalTime:       mustClock(t, arrival),
			ValidFrom:         validFrom,
			ValidTo:           validTo,
			Status:            status,
		}
	}

	trips := []*oktf.Trip{
		saigoTrip("S001", "FERRY_OKI", "08:30", "10:55", oktf.TripStatusScheduled),
		saigoTrip("S002", "RAINBOWJET", "10:15", "11:25", oktf.TripStatusCancelled),
		saigoTrip("S003", "FERRY_SHIRASHIMA", "14:00", "16:25", oktf.TripStatusScheduled),
	}

	return Source{
		Timetable: timetable.NewStore(trips),
		Fares:     fares.NewResolver(nil, nil),
	}
}

func TestPortQuery(t *testing.T) {
	source := boardFixtureSource(t)

	port, err := source.PortQuery(query.Port{PrimaryIdentifier: "OKI:PORT:SAIGO"})
	require.NoError(t, err)
	assert.Equal(t, "Saigo", port.PrimaryName)
	assert.Equal(t, oktf.PortRegionDogo, port.Region)

	_, err = source.PortQuery(query.Port{PrimaryIdentifier: "OKI:PORT:NOWHERE"})
	assert.Error(t, err)
}

func TestDepartureBoardQuery(t *testing.T) {
	source := boardFixtureSource(t)

	board, err := source.DepartureBoardQuery(query.DepartureBoard{
		Port:          oktf.PortByIdentifier("OKI:PORT:SAIGO"),
		Count:         3,
		StartDateTime: mustDate(t, "2025-11-02"),
	})
	require.NoError(t, err)
	require.Len(t, board, 3)

	assert.Equal(t, "OKI:TRIP:S001", board[0].Trip.PrimaryIdentifier)
	assert.Equal(t, oktf.DepartureBoardRecordTypeScheduled, board[0].Type)
	assert.Equal(t, "Shichirui", board[0].DestinationDisplay)
	require.NotNil(t, board[0].Trip.Ship)
	assert.Equal(t, oktf.VesselTypeFerry, board[0].Trip.Ship.VesselType)

	// Cancelled sailings stay on the board so they can be shown struck out
	assert.Equal(t, "OKI:TRIP:S002", board[1].Trip.PrimaryIdentifier)
	assert.Equal(t, oktf.DepartureBoardRecordTypeCancelled, board[1].Type)
}

func TestDepartureBoardQuery_afterTime(t *testing.T) {
	source := boardFixtureSource(t)

	start := mustDate(t, "2025-11-02").Add(12 * time.Hour)

	board, err := source.DepartureBoardQuery(query.DepartureBoard{
		Port:          oktf.PortByIdentifier("OKI:PORT:SAIGO"),
		Count:         1,
		StartDateTime: start,
	})
	require.NoError(t, err)
	require.Len(t, board, 1)

	// Only the afternoon sailing is left today
	assert.Equal(t, "OKI:TRIP:S003", board[0].Trip.PrimaryIdentifier)
}

func TestDepartureBoardQuery_rollsOntoNextDay(t *testing.T) {
	source := boardFixtureSource(t)

	// Start late enough that todays board is empty, so the board is filled
	// from the start of tomorrow instead
	start := mustDate(t, "2025-11-02").Add(20 * time.Hour)

	board, err := source.DepartureBoardQuery(query.DepartureBoard{
		Port:          oktf.PortByIdentifier("OKI:PORT:SAIGO"),
		Count:         2,
		StartDateTime: start,
	})
	require.NoError(t, err)
	require.Len(t, board, 2)

	assert.Equal(t, "OKI:TRIP:S001", board[0].Trip.PrimaryIdentifier)
	assert.Equal(t, mustDate(t, "2025-11-03").Add(8*time.Hour+30*time.Minute), board[0].Time)
}

func TestFareQuery(t *testing.T) {
	version := &oktf.FareVersion{
		Identifier:    "OKI:FAREVERSION:ferry-2025",
		VesselType:    oktf.VesselTypeFerry,
		EffectiveFrom: mustDate(t, "2025-04-01"),
		Routes: []oktf.FareRoute{
			{
				DeparturePortRef: "OKI:PORT:SAIGO",
				ArrivalPortRef:   "OKI:PORT:SHICHIRUI",
				Adult:            3504,
				Child:            1760,
			},
		},
	}

	source := Source{
		Timetable: timetable.NewStore(nil),
		Fares:     fares.NewResolver([]*oktf.FareVersion{version}, nil),
	}

	fare, err := source.FareQuery(query.Fare{
		DeparturePortRef: "OKI:PORT:SAIGO",
		ArrivalPortRef:   "OKI:PORT:SHICHIRUI",
		VesselType:       oktf.VesselTypeFerry,
		Date:             mustDate(t, "2025-11-02"),
	})
	require.NoError(t, err)
	assert.True(t, fare.Known)
	assert.Equal(t, 3510, fare.Adult)
}
