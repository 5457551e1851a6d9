package oktf

import "time"

type DepartureBoard struct {
	Trip *Trip `groups:"basic"`

	DestinationDisplay string `groups:"basic"`

	Type DepartureBoardRecordType `groups:"basic"`

	Time time.Time `groups:"basic"`
}

type DepartureBoardRecordType string

const (
	DepartureBoardRecordTypeScheduled DepartureBoardRecordType = "Scheduled"
	DepartureBoardRecordTypeCancelled DepartureBoardRecordType = "Cancelled"
	DepartureBoardRecordTypeAltered   DepartureBoardRecordType = "Altered"
)

// GenerateDepartureBoardFromTrips builds departure records for every trip
// leaving the port on the given date at or after the given date-time.
// Cancelled sailings stay on the board so callers can show them struck out.
func GenerateDepartureBoardFromTrips(trips []*Trip, dateTime time.Time) []*DepartureBoard {
	var departureBoard []*DepartureBoard

	for _, trip := range trips {
		if !trip.RunsOn(dateTime) {
			continue
		}

		departureTime := trip.DepartureOn(dateTime)
		if departureTime.Before(dateTime) {
			continue
		}

		recordType := DepartureBoardRecordTypeScheduled
		switch trip.Status {
		case TripStatusCancelled:
			recordType = DepartureBoardRecordTypeCancelled
		case TripStatusAltered:
			recordType = DepartureBoardRecordTypeAltered
		}

		destinationDisplay := trip.ArrivalPortRef
		if destinationPort := PortByIdentifier(trip.ArrivalPortRef); destinationPort != nil {
			destinationDisplay = destinationPort.PrimaryName
		}

		trip.GetShip()

		departureBoard = append(departureBoard, &DepartureBoard{
			Trip:               trip,
			DestinationDisplay: destinationDisplay,
			Type:               recordType,
			Time:               departureTime,
		})
	}

	return departureBoard
}
