package okitimetable

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/rs/zerolog/log"
)

// TimetableData is the raw trip export: a JSON array of scheduled sailings
// with bare port/ship codes and HH:MM clock times.
type TimetableData struct {
	Records []TripRecord
}

type TripRecord struct {
	TripID     string `json:"tripId"`
	NextTripID string `json:"nextTripId"`

	ShipName string `json:"shipName"`

	DeparturePort string `json:"departurePort"`
	ArrivalPort   string `json:"arrivalPort"`

	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`

	ValidFrom string `json:"validFrom"`
	ValidTo   string `json:"validTo"`

	Status string `json:"status"`
}

func (t *TimetableData) ParseFile(reader io.Reader) error {
	decoder := json.NewDecoder(reader)

	if err := decoder.Decode(&t.Records); err != nil {
		return fmt.Errorf("parse timetable: %w", err)
	}

	return nil
}

// Trips converts the raw records into trips, dropping records that break the
// basic invariants rather than failing the whole load.
func (t *TimetableData) Trips() []*oktf.Trip {
	var trips []*oktf.Trip

	for _, record := range t.Records {
		trip, err := record.convert()
		if err != nil {
			log.Warn().Err(err).Str("trip", record.TripID).Msg("Skipping invalid trip record")
			continue
		}

		trips = append(trips, trip)
	}

	return trips
}

func (r *TripRecord) convert() (*oktf.Trip, error) {
	if r.DeparturePort == r.ArrivalPort {
		return nil, fmt.Errorf("departure and arrival port are both %s", r.DeparturePort)
	}

	departureTime, err := time.Parse(oktf.ClockTimeFormat, r.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("departure time: %w", err)
	}
	arrivalTime, err := time.Parse(oktf.ClockTimeFormat, r.ArrivalTime)
	if err != nil {
		return nil, fmt.Errorf("arrival time: %w", err)
	}

	validFrom, err := time.Parse(oktf.DateFormat, r.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("valid from: %w", err)
	}
	validTo, err := time.Parse(oktf.DateFormat, r.ValidTo)
	if err != nil {
		return nil, fmt.Errorf("valid to: %w", err)
	}

	if validFrom.After(validTo) {
		return nil, fmt.Errorf("validity window %s - %s is inverted", r.ValidFrom, r.ValidTo)
	}

	return &oktf.Trip{
		PrimaryIdentifier: fmt.Sprintf("OKI:TRIP:%s", r.TripID),
		NextTripRef:       nextTripRef(r.NextTripID),

		ShipRef: fmt.Sprintf("OKI:SHIP:%s", r.ShipName),

		DeparturePortRef: fmt.Sprintf("OKI:PORT:%s", r.DeparturePort),
		ArrivalPortRef:   fmt.Sprintf("OKI:PORT:%s", r.ArrivalPort),

		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,

		ValidFrom: validFrom,
		ValidTo:   validTo,

		Status: tripStatus(r.Status),
	}, nil
}

func nextTripRef(nextTripID string) string {
	if nextTripID == "" {
		return ""
	}

	return fmt.Sprintf("OKI:TRIP:%s", nextTripID)
}

func tripStatus(status string) oktf.TripStatus {
	switch status {
	case "suspended":
		return oktf.TripStatusSuspended
	case "cancelled":
		return oktf.TripStatusCancelled
	case "altered":
		return oktf.TripStatusAltered
	default:
		return oktf.TripStatusScheduled
	}
}
