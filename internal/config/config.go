// Package config provides YAML-based configuration for the watcher.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration. Telegram credentials are
// deliberately not part of it; they come from the process environment.
type Config struct {
	// ListingURL is the public event listing to check.
	ListingURL string `yaml:"listing_url"`

	// Timezone is the IANA timezone the venue operates in (e.g. "Europe/Vienna").
	// Target-date and trigger-time arithmetic happen in this zone.
	Timezone string `yaml:"timezone"`

	// TargetTime is the local wall-clock trigger time in "HH:MM" form.
	TargetTime string `yaml:"target_time"`
}

// Default returns the in-memory default configuration: the Staatsoper
// listing, checked daily at 09:30 Vienna time.
func Default() *Config {
	return &Config{
		ListingURL: "https://tickets.wiener-staatsoper.at/webshop/webticket/eventlist",
		Timezone:   "Europe/Vienna",
		TargetTime: "09:30",
	}
}

// Normalize fills in missing values with defaults so partially-filled config
// files still behave correctly.
func (c *Config) Normalize() {
	def := Default()
	if c.ListingURL == "" {
		c.ListingURL = def.ListingURL
	}
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.TargetTime == "" {
		c.TargetTime = def.TargetTime
	}
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Target parses TargetTime into its hour and minute.
func (c *Config) Target() (hour, minute int, err error) {
	parts := strings.Split(c.TargetTime, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid target_time %q: want HH:MM", c.TargetTime)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid target_time %q: %w", c.TargetTime, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid target_time %q: %w", c.TargetTime, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("target_time %q out of range", c.TargetTime)
	}

	return hour, minute, nil
}

// Load reads configuration from the given YAML path. An empty path or a
// missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	return &cfg, nil
}
