// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"app"`

	API struct {
		BaseURL        string  `yaml:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds"` // 0 = no deadline
		RatePerSecond  float64 `yaml:"rate_per_second"` // 0 = unlimited
		Burst          int     `yaml:"burst"`
	} `yaml:"api"`

	Refresh struct {
		IntervalMS       int `yaml:"interval_ms"`
		CompanyLimit     int `yaml:"company_limit"`
		OpportunityLimit int `yaml:"opportunity_limit"`
	} `yaml:"refresh"`

	Display struct {
		Timezone       string `yaml:"timezone"`
		DateLayout     string `yaml:"date_layout"`
		DateTimeLayout string `yaml:"datetime_layout"`
	} `yaml:"display"`

	Backend struct {
		Embedded bool   `yaml:"embedded"`
		DBPath   string `yaml:"db_path"`
		SeedDemo bool   `yaml:"seed_demo"`
	} `yaml:"backend"`
}

func Default() Config {
	var c Config
	c.App.Host = "127.0.0.1"
	c.App.Port = 38471
	c.App.LogLevel = "info"

	c.API.BaseURL = "http://127.0.0.1:38471"
	c.API.RatePerSecond = 5
	c.API.Burst = 3

	c.Refresh.IntervalMS = 5 * 60 * 1000
	c.Refresh.CompanyLimit = 20
	c.Refresh.OpportunityLimit = 50

	c.Display.Timezone = "Local"
	c.Display.DateLayout = "1/2/2006"
	c.Display.DateTimeLayout = "1/2/2006, 3:04:05 PM"

	c.Backend.Embedded = true
	c.Backend.DBPath = "roleradar.db"
	return c
}

// Load reads path over the defaults and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c Config) Interval() time.Duration {
	return time.Duration(c.Refresh.IntervalMS) * time.Millisecond
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Location resolves display.timezone; unknown names fall back to Local.
func (c Config) Location() *time.Location {
	switch c.Display.Timezone {
	case "", "Local":
		return time.Local
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
