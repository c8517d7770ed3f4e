package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/imdario/mergo"
	"github.com/robgonnella/netsweep/internal/classify"
	"github.com/robgonnella/netsweep/internal/discovery"
	"github.com/robgonnella/netsweep/internal/progress"
	"github.com/robgonnella/netsweep/internal/report"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Probe represents liveness probe configuration
type Probe struct {
	Method  discovery.ProbeMethod `yaml:"method"`
	Timeout time.Duration         `yaml:"timeout"`
	Port    string                `yaml:"port"`
}

// Progress represents console progress configuration. A nil Dwell means
// "use the default" so that an explicit 0 can disable the pause.
type Progress struct {
	Dwell *time.Duration `yaml:"dwell"`
}

// History represents scan history configuration
type History struct {
	Disabled bool `yaml:"disabled"`
}

// Classify represents additional device classification rules
type Classify struct {
	Rules []classify.Rule `yaml:"rules"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Output   string   `yaml:"output"`
	Probe    Probe    `yaml:"probe"`
	Progress Progress `yaml:"progress"`
	History  History  `yaml:"history"`
	Classify Classify `yaml:"classify"`
}

// DwellOrDefault returns the configured phase dwell
func (c *Config) DwellOrDefault() time.Duration {
	if c.Progress.Dwell == nil {
		return progress.DefaultDwell
	}

	return *c.Progress.Dwell
}

// Validate checks user provided values
func (c *Config) Validate() error {
	switch c.Probe.Method {
	case discovery.ProbeICMP, discovery.ProbeTCP, discovery.ProbeNmap:
	default:
		return fmt.Errorf("unsupported probe method: %s", c.Probe.Method)
	}

	if c.Probe.Timeout <= 0 {
		return errors.New("probe timeout must be greater than zero")
	}

	if c.Progress.Dwell != nil && *c.Progress.Dwell < 0 {
		return errors.New("progress dwell cannot be negative")
	}

	return nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: report.DefaultOutput,
		Probe: Probe{
			Method:  discovery.ProbeICMP,
			Timeout: discovery.DefaultProbeTimeout,
			Port:    discovery.DefaultTCPPort,
		},
		Progress: Progress{},
		History: History{
			Disabled: false,
		},
		Classify: Classify{
			Rules: []classify.Rule{},
		},
	}
}

// New returns umarshaled data structure of user provided config merged
// over defaults. A missing file yields the defaults.
func New(confPath string) (*Config, error) {
	var config Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, err
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&config, Default()); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Write persists conf to the configured config file
func Write(conf Config) error {
	configFile := viper.GetString("config-file")

	if configFile == "" {
		return errors.New("config file path not set")
	}

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}
