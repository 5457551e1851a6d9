package query

import (
	"fmt"
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
)

type RoutePlan struct {
	OriginPort      *oktf.Port
	DestinationPort *oktf.Port

	TargetDateTime time.Time
	Mode           oktf.SearchMode

	Count int
}

func (r *RoutePlan) CacheKey() string {
	return fmt.Sprintf(
		"routeplan/%s/%s/%s/%s/%d",
		r.OriginPort.PrimaryIdentifier,
		r.DestinationPort.PrimaryIdentifier,
		r.TargetDateTime.Format(time.RFC3339),
		r.Mode,
		r.Count,
	)
}
