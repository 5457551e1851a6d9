package timetablelookup

import (
	"errors"

	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/oktf"
)

func (s Source) PortQuery(q query.Port) (*oktf.Port, error) {
	port := oktf.PortByIdentifier(q.PrimaryIdentifier)

	if port == nil {
		return nil, errors.New("Could not find a matching Port")
	}

	return port, nil
}
