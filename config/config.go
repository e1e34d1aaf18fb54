// Package config provides YAML configuration parsing for projectboard.
//
// This package enables running projectboard as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
// The config describes the board title and the projects the board is
// seeded with before the interactive session starts.
//
// Example configuration:
//
//	title: Team Sprint Board
//
//	seeds:
//	  - title: Build shed
//	    description: Wooden shed construction
//	    people: 3
//
//	  - title: Paint fence
//	    description: White paint everywhere
//	    people: 2
//	    status: finished
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Validation limits for seed projects. These mirror the form rules of the
// interactive session so a seeded board is indistinguishable from one
// built by hand.
const (
	minDescriptionLen = 5
	minPeople         = 1
	maxPeople         = 5
)

// Config is the root configuration structure for projectboard.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Title is the board title. Defaults to "ProjectBoard" if not set.
	Title string `yaml:"title"`

	// Seeds defines projects created on the board before the session
	// starts, in file order.
	Seeds []SeedConfig `yaml:"seeds"`
}

// SeedConfig defines a single seed project.
type SeedConfig struct {
	// Title is the project's display title. Required, non-empty.
	Title string `yaml:"title"`

	// Description is the project description. Required, at least 5
	// characters.
	Description string `yaml:"description"`

	// People is the number of people assigned. Must be between 1 and 5.
	People int `yaml:"people"`

	// Status is the project's initial status: "active" or "finished".
	// Defaults to "active". Finished seeds are created active and then
	// moved, so status transition stays the only post-creation mutation.
	Status string `yaml:"status"`
}

// Load reads and parses a YAML configuration file.
//
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Seed statuses default to "active". All seeds are validated against the
// same rules the interactive form applies.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate applies defaults and checks every seed.
func (c *Config) validate() error {
	for i := range c.Seeds {
		s := &c.Seeds[i]

		if s.Title == "" {
			return fmt.Errorf("seeds[%d]: title is required", i)
		}

		if s.Description == "" {
			return fmt.Errorf("seeds[%d] (%s): description is required", i, s.Title)
		}
		if n := utf8.RuneCountInString(s.Description); n < minDescriptionLen {
			return fmt.Errorf("seeds[%d] (%s): description must be at least %d characters, got %d",
				i, s.Title, minDescriptionLen, n)
		}

		if s.People < minPeople || s.People > maxPeople {
			return fmt.Errorf("seeds[%d] (%s): people must be between %d and %d, got %d",
				i, s.Title, minPeople, maxPeople, s.People)
		}

		if s.Status == "" {
			s.Status = "active"
		}
		if s.Status != "active" && s.Status != "finished" {
			return fmt.Errorf("seeds[%d] (%s): status must be \"active\" or \"finished\", got %q",
				i, s.Title, s.Status)
		}
	}

	return nil
}
