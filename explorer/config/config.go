package config

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bikeshare/domain/entities/filter"
)

//go:embed config.yaml
var defaultConfig []byte

// TripColumns contains the name of each column of the trips files to analyze
type TripColumns struct {
	StartTime    string `yaml:"start_time"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	TripDuration string `yaml:"trip_duration"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// Required returns the columns every trips file must have
func (tc TripColumns) Required() []string {
	return []string{tc.StartTime, tc.StartStation, tc.EndStation, tc.TripDuration, tc.UserType}
}

type ExplorerConfig struct {
	LogLevel        string            `yaml:"log_level"`
	DataDir         string            `yaml:"data_dir"`
	StartTimeLayout string            `yaml:"start_time_layout"`
	CityFiles       map[string]string `yaml:"city_files"`
	Columns         TripColumns       `yaml:"columns"`
	Reporters       []string          `yaml:"reporters"`
}

// GetCityFilepath returns the path to the trips file of the city
func (ec *ExplorerConfig) GetCityFilepath(city string) (string, bool) {
	filename, ok := ec.CityFiles[city]
	if !ok {
		return "", false
	}
	return filepath.Join(ec.DataDir, filename), true
}

// LoadConfig returns the configuration embedded in the binary
func LoadConfig() (*ExplorerConfig, error) {
	return LoadConfigFromBytes(defaultConfig)
}

func LoadConfigFromBytes(configBytes []byte) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configBytes, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	err = explorerConfig.validate()
	if err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

func (ec *ExplorerConfig) validate() error {
	if len(ec.CityFiles) != len(filter.Cities) {
		return fmt.Errorf("invalid explorer config: expected files for %v, got %d entries", filter.Cities, len(ec.CityFiles))
	}

	for _, city := range filter.Cities {
		if ec.CityFiles[city] == "" {
			return fmt.Errorf("invalid explorer config: missing file for city %s", city)
		}
	}

	for _, column := range ec.Columns.Required() {
		if column == "" {
			return fmt.Errorf("invalid explorer config: required column names cannot be empty")
		}
	}

	if ec.StartTimeLayout == "" {
		return fmt.Errorf("invalid explorer config: start_time_layout cannot be empty")
	}

	return nil
}
