package dataloader

type DataSource struct {
	Identifier string
	Provider   Provider

	Datasets []DataSet
}

type DataSet struct {
	Identifier    string
	DataSourceRef string
	Format        DataSetFormat

	Provider Provider

	Source string
}

type DataSetFormat string

const (
	DataSetFormatOkiTimetable  DataSetFormat = "oki-timetable"
	DataSetFormatOkiFareMaster               = "oki-faremaster"
)

type Provider struct {
	Name    string
	Website string
}
