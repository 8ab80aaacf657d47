// Package config loads the YAML configuration shared by the agent and the
// panel binaries.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Operating modes for the panel's data source.
const (
	ModeDemo   = "demo"
	ModeSerial = "serial"
)

// SerialConfig describes the serial link.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// HTTPConfig describes the agent's API listener.
type HTTPConfig struct {
	Listen      string `yaml:"listen"`
	RequireAuth bool   `yaml:"require_auth"`
}

// PanelConfig describes the panel's refresh behavior.
type PanelConfig struct {
	Mode              string `yaml:"mode"` // demo | serial
	DataIntervalMS    int    `yaml:"data_interval_ms"`
	DisplayIntervalMS int    `yaml:"display_interval_ms"`
}

// Config is the full on-disk configuration.
type Config struct {
	Serial SerialConfig `yaml:"serial"`
	HTTP   HTTPConfig   `yaml:"http"`
	Panel  PanelConfig  `yaml:"panel"`
}

// Default returns the built-in configuration: demo mode, 1000ms data
// refresh, 500ms display refresh, API on localhost.
func Default() Config {
	return Config{
		Serial: SerialConfig{Baud: 9600},
		HTTP:   HTTPConfig{Listen: "localhost:8080"},
		Panel: PanelConfig{
			Mode:              ModeDemo,
			DataIntervalMS:    1000,
			DisplayIntervalMS: 500,
		},
	}
}

// Load reads the named file over the defaults. A missing file is not an
// error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.normalize()
}

func (c *Config) normalize() error {
	if c.Panel.Mode == "" {
		// Presence of a configured port implies the real-data path.
		if c.Serial.Port != "" {
			c.Panel.Mode = ModeSerial
		} else {
			c.Panel.Mode = ModeDemo
		}
	}
	if c.Panel.Mode != ModeDemo && c.Panel.Mode != ModeSerial {
		return fmt.Errorf("unknown panel mode %q", c.Panel.Mode)
	}
	if c.Panel.Mode == ModeSerial && c.Serial.Port == "" {
		return fmt.Errorf("serial mode requires a serial port")
	}
	if c.Panel.DataIntervalMS <= 0 {
		c.Panel.DataIntervalMS = 1000
	}
	if c.Panel.DisplayIntervalMS <= 0 {
		c.Panel.DisplayIntervalMS = 500
	}
	if c.Serial.Baud <= 0 {
		c.Serial.Baud = 9600
	}
	if c.HTTP.Listen == "" {
		c.HTTP.Listen = "localhost:8080"
	}
	return nil
}

// DataInterval returns the data-refresh interval.
func (c Config) DataInterval() time.Duration {
	return time.Duration(c.Panel.DataIntervalMS) * time.Millisecond
}

// DisplayInterval returns the display-refresh interval.
func (c Config) DisplayInterval() time.Duration {
	return time.Duration(c.Panel.DisplayIntervalMS) * time.Millisecond
}
