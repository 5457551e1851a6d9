package okifare

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/okinavi/okinavi/pkg/util"
	"github.com/rs/zerolog/log"
)

// FareMasterData is the raw fare master document: dated fare versions per
// vessel type, port alias groups, and downstream discount definitions.
type FareMasterData struct {
	Document FareMasterDocument
}

type FareMasterDocument struct {
	Versions []VersionRecord `json:"versions"`
	Aliases  []AliasRecord   `json:"aliases"`

	// Discounts are applied downstream of fare resolution, kept verbatim
	Discounts []json.RawMessage `json:"discounts"`
}

type VersionRecord struct {
	ID            string        `json:"id"`
	VesselType    string        `json:"vesselType"`
	EffectiveFrom string        `json:"effectiveFrom"`
	Routes        []RouteRecord `json:"routes"`
}

type RouteRecord struct {
	ID        string     `json:"id"`
	Departure string     `json:"departure"`
	Arrival   string     `json:"arrival"`
	Fares     FareRecord `json:"fares"`
}

type FareRecord struct {
	Adult       int               `json:"adult"`
	Child       int               `json:"child"`
	Vehicles    []VehicleRecord   `json:"vehicles"`
	SeatClasses []SeatClassRecord `json:"seatClasses"`
}

type VehicleRecord struct {
	MaxLengthMetres float64 `json:"maxLengthMetres"`
	Amount          int     `json:"amount"`
}

type SeatClassRecord struct {
	Class  string `json:"class"`
	Amount int    `json:"amount"`
}

type AliasRecord struct {
	Token       string   `json:"token"`
	Ports       []string `json:"ports"`
	VesselTypes []string `json:"vesselTypes"`
}

func (f *FareMasterData) ParseFile(reader io.Reader) error {
	decoder := json.NewDecoder(reader)

	if err := decoder.Decode(&f.Document); err != nil {
		return fmt.Errorf("parse fare master: %w", err)
	}

	return nil
}

func (f *FareMasterData) Versions() []*oktf.FareVersion {
	var versions []*oktf.FareVersion

	for _, record := range f.Document.Versions {
		effectiveFrom, err := time.Parse(oktf.DateFormat, record.EffectiveFrom)
		if err != nil {
			log.Warn().Err(err).Str("version", record.ID).Msg("Skipping fare version with invalid effective date")
			continue
		}

		version := &oktf.FareVersion{
			Identifier:    fmt.Sprintf("OKI:FAREVERSION:%s", record.ID),
			VesselType:    vesselType(record.VesselType),
			EffectiveFrom: effectiveFrom,
		}

		for _, routeRecord := range record.Routes {
			route := oktf.FareRoute{
				Identifier: fmt.Sprintf("OKI:FAREROUTE:%s", routeRecord.ID),

				DeparturePortRef: portRef(routeRecord.Departure),
				ArrivalPortRef:   portRef(routeRecord.Arrival),

				Adult: routeRecord.Fares.Adult,
				Child: routeRecord.Fares.Child,
			}

			for _, vehicle := range routeRecord.Fares.Vehicles {
				route.Vehicles = append(route.Vehicles, oktf.VehicleFare{
					MaxLengthMetres: vehicle.MaxLengthMetres,
					Amount:          vehicle.Amount,
				})
			}
			for _, seatClass := range routeRecord.Fares.SeatClasses {
				route.SeatClasses = append(route.SeatClasses, oktf.SeatClassFare{
					Class:  seatClass.Class,
					Amount: seatClass.Amount,
				})
			}

			version.Routes = append(version.Routes, route)
		}

		versions = append(versions, version)
	}

	return versions
}

func (f *FareMasterData) AliasGroups() []oktf.PortAliasGroup {
	var aliasGroups []oktf.PortAliasGroup

	for _, record := range f.Document.Aliases {
		group := oktf.PortAliasGroup{
			Token: portRef(record.Token),
		}

		for _, port := range util.RemoveDuplicateStrings(record.Ports, nil) {
			group.PortRefs = append(group.PortRefs, portRef(port))
		}
		for _, vessel := range record.VesselTypes {
			group.VesselTypes = append(group.VesselTypes, vesselType(vessel))
		}

		aliasGroups = append(aliasGroups, group)
	}

	return aliasGroups
}

func portRef(code string) string {
	return fmt.Sprintf("OKI:PORT:%s", code)
}

func vesselType(code string) oktf.VesselType {
	switch code {
	case "ferry":
		return oktf.VesselTypeFerry
	case "highspeed":
		return oktf.VesselTypeHighspeed
	case "local":
		return oktf.VesselTypeLocal
	default:
		return oktf.VesselTypeUnknown
	}
}
