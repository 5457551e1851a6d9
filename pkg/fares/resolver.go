package fares

import (
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
	"golang.org/x/exp/slices"
)

// Resolver maps (departure, arrival, vessel type, date) onto a fare amount.
// Like the timetable store it is immutable after construction.
type Resolver struct {
	versions    []*oktf.FareVersion
	aliasGroups []oktf.PortAliasGroup
}

func NewResolver(versions []*oktf.FareVersion, aliasGroups []oktf.PortAliasGroup) *Resolver {
	return &Resolver{
		versions:    versions,
		aliasGroups: aliasGroups,
	}
}

// Resolve finds the fare for the port pair under the fare version in effect on
// the date. A missing version or route yields a FareAmount with Known false,
// never an error. Amounts are rounded up to the nearest 10 currency units.
func (r *Resolver) Resolve(departurePortRef string, arrivalPortRef string, vesselType oktf.VesselType, date time.Time) oktf.FareAmount {
	version := r.versionInEffect(vesselType, date)
	if version == nil {
		return oktf.FareAmount{}
	}

	for _, candidate := range r.candidatePairs(departurePortRef, arrivalPortRef, vesselType) {
		for i := range version.Routes {
			route := &version.Routes[i]

			if route.DeparturePortRef == candidate.departure && route.ArrivalPortRef == candidate.arrival {
				return oktf.FareAmount{
					Adult: oktf.RoundUpToTen(route.Adult),
					Child: oktf.RoundUpToTen(route.Child),
					Known: true,
				}
			}
		}
	}

	return oktf.FareAmount{}
}

// ResolveForTrip classifies the trip's vessel from its ship reference first.
func (r *Resolver) ResolveForTrip(trip *oktf.Trip, date time.Time) oktf.FareAmount {
	return r.Resolve(trip.DeparturePortRef, trip.ArrivalPortRef, trip.VesselType(), date)
}

// versionInEffect picks the fare version with the latest EffectiveFrom at or
// before the date for the vessel type.
func (r *Resolver) versionInEffect(vesselType oktf.VesselType, date time.Time) *oktf.FareVersion {
	var selected *oktf.FareVersion

	for _, version := range r.versions {
		if version.VesselType != vesselType {
			continue
		}

		if version.EffectiveFrom.After(date) {
			continue
		}

		if selected == nil || version.EffectiveFrom.After(selected.EffectiveFrom) {
			selected = version
		}
	}

	return selected
}

type portPair struct {
	departure string
	arrival   string
}

// candidatePairs generates lookup keys in priority order: the exact pair
// first, then each endpoint alias-expanded on its own, then both together.
// The first candidate that matches a route wins.
func (r *Resolver) candidatePairs(departurePortRef string, arrivalPortRef string, vesselType oktf.VesselType) []portPair {
	departureAliases := r.aliasTokens(departurePortRef, vesselType)
	arrivalAliases := r.aliasTokens(arrivalPortRef, vesselType)

	pairs := []portPair{
		{departure: departurePortRef, arrival: arrivalPortRef},
	}

	for _, alias := range departureAliases {
		pairs = append(pairs, portPair{departure: alias, arrival: arrivalPortRef})
	}
	for _, alias := range arrivalAliases {
		pairs = append(pairs, portPair{departure: departurePortRef, arrival: alias})
	}
	for _, departureAlias := range departureAliases {
		for _, arrivalAlias := range arrivalAliases {
			pairs = append(pairs, portPair{departure: departureAlias, arrival: arrivalAlias})
		}
	}

	return pairs
}

func (r *Resolver) aliasTokens(portRef string, vesselType oktf.VesselType) []string {
	var tokens []string

	for _, group := range r.aliasGroups {
		if len(group.VesselTypes) > 0 && !slices.Contains(group.VesselTypes, vesselType) {
			continue
		}

		if slices.Contains(group.PortRefs, portRef) {
			tokens = append(tokens, group.Token)
		}
	}

	return tokens
}
