package oktf

import "time"

type SearchMode string

const (
	SearchModeDepartAfter  SearchMode = "DepartAfter"
	SearchModeArriveBefore            = "ArriveBefore"
)

type RoutePlanResults struct {
	RoutePlans []RoutePlan `groups:"basic"`

	OriginPort      Port `groups:"basic"`
	DestinationPort Port `groups:"basic"`
}

type RoutePlan struct {
	Segments []RoutePlanSegment `groups:"basic"`

	DepartureTime time.Time     `groups:"basic"`
	ArrivalTime   time.Time     `groups:"basic"`
	Duration      time.Duration `groups:"basic"`

	TotalFare FareAmount `groups:"basic"`

	TransferCount int `groups:"basic"`
}

type RoutePlanSegment struct {
	Trip Trip `groups:"basic"`

	OriginPortRef      string `groups:"basic"`
	DestinationPortRef string `groups:"basic"`

	DepartureTime time.Time `groups:"basic"`
	ArrivalTime   time.Time `groups:"basic"`

	Fare FareAmount `groups:"basic"`
}
