package oktf

import (
	"time"

	"github.com/okinavi/okinavi/pkg/util"
)

const DateFormat = "2006-01-02"
const ClockTimeFormat = "15:04"

type Trip struct {
	PrimaryIdentifier string `groups:"basic"`

	// NextTripRef chains a sailing to the vessel's following sailing.
	// Carried through from the source data but not used when searching.
	NextTripRef string `groups:"detailed" json:",omitempty"`

	ShipRef string `groups:"basic"`
	Ship    *Ship  `groups:"basic" json:",omitempty"`

	DeparturePortRef string `groups:"basic"`
	ArrivalPortRef   string `groups:"basic"`

	DepartureTime time.Time `groups:"basic"`
	ArrivalTime   time.Time `groups:"basic"`

	ValidFrom time.Time `groups:"detailed"`
	ValidTo   time.Time `groups:"detailed"`

	Status TripStatus `groups:"basic"`
}

type TripStatus string

const (
	TripStatusScheduled TripStatus = "Scheduled"
	TripStatusSuspended            = "Suspended"
	TripStatusCancelled            = "Cancelled"
	TripStatusAltered              = "Altered"
)

func (t *Trip) GetShip() {
	if t.Ship != nil {
		return
	}

	t.Ship = ShipByIdentifier(t.ShipRef)
}

func (t *Trip) VesselType() VesselType {
	return VesselTypeForShip(t.ShipRef)
}

// RunsOn reports whether the date falls inside the trip's validity window.
// Both bounds are inclusive and compared at calendar-day granularity, so the
// query date's timezone never shifts it off its own day.
func (t *Trip) RunsOn(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	from := time.Date(t.ValidFrom.Year(), t.ValidFrom.Month(), t.ValidFrom.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(t.ValidTo.Year(), t.ValidTo.Month(), t.ValidTo.Day(), 0, 0, 0, 0, time.UTC)

	return !day.Before(from) && !day.After(to)
}

func (t *Trip) DepartureOn(date time.Time) time.Time {
	return util.AddTimeToDate(date, t.DepartureTime)
}

// ArrivalOn resolves the arrival clock time against the departure date.
// An arrival clock time earlier than the departure means the sailing
// crosses midnight and arrives the next calendar day.
func (t *Trip) ArrivalOn(date time.Time) time.Time {
	departure := util.AddTimeToDate(date, t.DepartureTime)
	arrival := util.AddTimeToDate(date, t.ArrivalTime)

	if arrival.Before(departure) {
		arrival = arrival.Add(24 * time.Hour)
	}

	return arrival
}
