package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TimerConfig declares one periodic TimeEvent source.
type TimerConfig struct {
	Label           string `yaml:"label"`
	IntervalSeconds int    `yaml:"intervalSeconds"`
}

// AppConfig is the YAML application configuration: identifier tags, counter
// resynchronization values, timers, and the event store endpoint.
type AppConfig struct {
	AccountID        string        `yaml:"accountId"`
	TraderTag        string        `yaml:"traderTag"`
	StrategyTag      string        `yaml:"strategyTag"`
	OrderIDStart     int           `yaml:"orderIdStart"`
	PositionIDStart  int           `yaml:"positionIdStart"`
	EventStoreDBURL  string        `yaml:"eventStoreDbUrl"`
	HTTPListenAddr   string        `yaml:"httpListenAddr"`
	Timers           []TimerConfig `yaml:"timers"`
}

func (c *AppConfig) Validate() error {
	if c.AccountID == "" {
		return fmt.Errorf("accountId not set")
	}

	if c.TraderTag == "" {
		return fmt.Errorf("traderTag not set")
	}

	if c.StrategyTag == "" {
		return fmt.Errorf("strategyTag not set")
	}

	if c.OrderIDStart < 0 || c.PositionIDStart < 0 {
		return fmt.Errorf("identifier counters must be non-negative")
	}

	for _, timer := range c.Timers {
		if timer.Label == "" {
			return fmt.Errorf("timer label not set")
		}

		if timer.IntervalSeconds <= 0 {
			return fmt.Errorf("timer %s: intervalSeconds must be positive", timer.Label)
		}
	}

	return nil
}

func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadAppConfig: failed to read %s: %w", path, err)
	}

	var config AppConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("LoadAppConfig: failed to unmarshal %s: %w", path, err)
	}

	if config.HTTPListenAddr == "" {
		config.HTTPListenAddr = ":8080"
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("LoadAppConfig: %w", err)
	}

	return &config, nil
}
