package dataloader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const datasourcesDirectory = "data/datasources/"

func GetRegisteredDataSets() []DataSet {
	return getDataSetsFromDirectory(datasourcesDirectory)
}

func getDataSetsFromDirectory(directory string) []DataSet {
	var registeredDatasets []DataSet

	err := filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !fileInfo.IsDir() {
				log.Debug().Str("path", path).Msg("Loading datasources file")

				extension := filepath.Ext(path)

				if extension != ".yaml" {
					return nil
				}

				datasourceYaml, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				decoder := yaml.NewDecoder(bytes.NewReader(datasourceYaml))

				for {
					var datasource DataSource
					if decoder.Decode(&datasource) != nil {
						break
					}

					for _, dataset := range datasource.Datasets {
						dataset.Identifier = fmt.Sprintf("%s-%s", datasource.Identifier, dataset.Identifier)
						dataset.DataSourceRef = datasource.Identifier
						dataset.Provider = datasource.Provider

						registeredDatasets = append(registeredDatasets, dataset)
					}
				}
			}

			return nil
		})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load datasources directory")
	}

	return registeredDatasets
}
