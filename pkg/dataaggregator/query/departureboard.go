package query

import (
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
)

type DepartureBoard struct {
	Port          *oktf.Port
	Count         int
	StartDateTime time.Time
}
