package oktf

type VesselType string

const (
	VesselTypeFerry     VesselType = "Ferry"
	VesselTypeHighspeed            = "Highspeed"
	VesselTypeLocal                = "Local"
	VesselTypeUnknown              = "UNKNOWN"
)

type Ship struct {
	PrimaryIdentifier string            `groups:"basic"`
	OtherNames        map[string]string `groups:"basic" json:",omitempty"`

	PrimaryName string `groups:"basic"`

	VesselType VesselType `groups:"basic"`
}

var Ships = []Ship{
	{
		PrimaryIdentifier: "OKI:SHIP:FERRY_OKI",
		PrimaryName:       "Ferry Oki",
		OtherNames:        map[string]string{"ja": "フェリーおき"},
		VesselType:        VesselTypeFerry,
	},
	{
		PrimaryIdentifier: "OKI:SHIP:FERRY_SHIRASHIMA",
		PrimaryName:       "Ferry Shirashima",
		OtherNames:        map[string]string{"ja": "フェリーしらしま"},
		VesselType:        VesselTypeFerry,
	},
	{
		PrimaryIdentifier: "OKI:SHIP:FERRY_KUNIGA",
		PrimaryName:       "Ferry Kuniga",
		OtherNames:        map[string]string{"ja": "フェリーくにが"},
		VesselType:        VesselTypeFerry,
	},
	{
		PrimaryIdentifier: "OKI:SHIP:FERRY_DOZEN",
		PrimaryName:       "Ferry Dozen",
		OtherNames:        map[string]string{"ja": "フェリーどうぜん"},
		VesselType:        VesselTypeFerry,
	},
	{
		PrimaryIdentifier: "OKI:SHIP:RAINBOWJET",
		PrimaryName:       "Rainbow Jet",
		OtherNames:        map[string]string{"ja": "レインボージェット"},
		VesselType:        VesselTypeHighspeed,
	},
	{
		PrimaryIdentifier: "OKI:SHIP:ISOKAZE",
		PrimaryName:       "Isokaze",
		OtherNames:        map[string]string{"ja": "いそかぜ"},
		VesselType:        VesselTypeLocal,
	},
}

func ShipByIdentifier(identifier string) *Ship {
	for i := range Ships {
		if Ships[i].PrimaryIdentifier == identifier {
			return &Ships[i]
		}
	}

	return nil
}

func VesselTypeForShip(shipRef string) VesselType {
	ship := ShipByIdentifier(shipRef)
	if ship == nil {
		return VesselTypeUnknown
	}

	return ship.VesselType
}
