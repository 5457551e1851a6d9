package query

type Port struct {
	PrimaryIdentifier string
}
