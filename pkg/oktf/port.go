package oktf

type Port struct {
	PrimaryIdentifier string            `groups:"basic"`
	OtherNames        map[string]string `groups:"basic" json:",omitempty"`

	PrimaryName string `groups:"basic"`

	Region PortRegion `groups:"basic"`
}

type PortRegion string

const (
	PortRegionMainland PortRegion = "Mainland"
	PortRegionDozen    PortRegion = "Dozen"
	PortRegionDogo     PortRegion = "Dogo"
)

// MainlandToken is the logical endpoint used by fare tables that price the two
// mainland piers identically.
const MainlandToken = "OKI:PORT:MAINLAND"

var Ports = []Port{
	{
		PrimaryIdentifier: "OKI:PORT:SHICHIRUI",
		PrimaryName:       "Shichirui",
		OtherNames:        map[string]string{"ja": "七類港"},
		Region:            PortRegionMainland,
	},
	{
		PrimaryIdentifier: "OKI:PORT:SAKAIMINATO",
		PrimaryName:       "Sakaiminato",
		OtherNames:        map[string]string{"ja": "境港"},
		Region:            PortRegionMainland,
	},
	{
		PrimaryIdentifier: "OKI:PORT:SAIGO",
		PrimaryName:       "Saigo",
		OtherNames:        map[string]string{"ja": "西郷港"},
		Region:            PortRegionDogo,
	},
	{
		PrimaryIdentifier: "OKI:PORT:BEPPU",
		PrimaryName:       "Beppu",
		OtherNames:        map[string]string{"ja": "別府港"},
		Region:            PortRegionDozen,
	},
	{
		PrimaryIdentifier: "OKI:PORT:HISHIURA",
		PrimaryName:       "Hishiura",
		OtherNames:        map[string]string{"ja": "菱浦港"},
		Region:            PortRegionDozen,
	},
	{
		PrimaryIdentifier: "OKI:PORT:KURII",
		PrimaryName:       "Kurii",
		OtherNames:        map[string]string{"ja": "来居港"},
		Region:            PortRegionDozen,
	},
}

func PortByIdentifier(identifier string) *Port {
	for i := range Ports {
		if Ports[i].PrimaryIdentifier == identifier {
			return &Ports[i]
		}
	}

	return nil
}
