package dataloader

import (
	"github.com/okinavi/okinavi/pkg/fares"
	"github.com/okinavi/okinavi/pkg/timetable"
)

// Repository is the fully loaded, read-only data a search session runs over.
type Repository struct {
	Timetable *timetable.Store
	Fares     *fares.Resolver
}
