package oktf

import "time"

type FareVersion struct {
	Identifier string `groups:"detailed"`

	VesselType    VesselType `groups:"detailed"`
	EffectiveFrom time.Time  `groups:"detailed"`

	Routes []FareRoute `groups:"detailed"`
}

type FareRoute struct {
	Identifier string `groups:"detailed"`

	DeparturePortRef string `groups:"basic"`
	ArrivalPortRef   string `groups:"basic"`

	Adult int `groups:"basic"`
	Child int `groups:"basic"`

	Vehicles    []VehicleFare   `groups:"detailed" json:",omitempty"`
	SeatClasses []SeatClassFare `groups:"detailed" json:",omitempty"`
}

type VehicleFare struct {
	MaxLengthMetres float64 `groups:"detailed"`
	Amount          int     `groups:"detailed"`
}

type SeatClassFare struct {
	Class  string `groups:"detailed"`
	Amount int    `groups:"detailed"`
}

// PortAliasGroup treats a set of port codes as one logical endpoint for fare
// lookup only. An empty VesselTypes list applies the group to every vessel type.
type PortAliasGroup struct {
	Token       string
	PortRefs    []string
	VesselTypes []VesselType
}

// FareAmount is a resolved fare. Known is false when no fare route matched,
// which is distinct from a matched fare of zero.
type FareAmount struct {
	Adult int `groups:"basic"`
	Child int `groups:"basic"`

	Known bool `groups:"basic"`
}

// RoundUpToTen rounds an amount up to the nearest 10 currency units.
func RoundUpToTen(amount int) int {
	if amount <= 0 {
		return 0
	}

	return ((amount + 9) / 10) * 10
}
