package log

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes per-logger levels loaded from a yaml file.
// Filters are translated into zapfilter rules, for example:
//
//	defaultLevel: info
//	filters:
//	  - loggers: [render, render.*]
//	    level: debug
type Config struct {
	DefaultLevel string   `yaml:"defaultLevel"`
	Filters      []Filter `yaml:"filters"`
}

type Filter struct {
	Loggers []string `yaml:"loggers"`
	Level   string   `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse log config %s: %w", path, err)
	}
	if cfg.DefaultLevel == "" {
		cfg.DefaultLevel = "info"
	}
	return cfg, nil
}

// Rules converts the config into a zapfilter rule string.
func (c *Config) Rules() string {
	rules := make([]string, 0, len(c.Filters)+1)
	for i := range c.Filters {
		if len(c.Filters[i].Loggers) == 0 {
			continue
		}
		rules = append(rules, fmt.Sprintf("%s:%s",
			c.Filters[i].Level,
			strings.Join(c.Filters[i].Loggers, ",")))
	}
	rules = append(rules, fmt.Sprintf("%s:*", c.DefaultLevel))
	return strings.Join(rules, " ")
}
