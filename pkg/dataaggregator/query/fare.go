package query

import (
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
)

type Fare struct {
	DeparturePortRef string
	ArrivalPortRef   string

	VesselType oktf.VesselType
	Date       time.Time
}
