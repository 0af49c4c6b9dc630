package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// Config holds all configuration for the demo
type Config struct {
	Verbose bool

	// Queue settings
	Capacity int

	// Worker settings
	Readers  int
	Writers  int
	Duration time.Duration
	MinDelay time.Duration
	MaxDelay time.Duration
	Match    string
}

// buildConfig builds a Config from CLI context flags
func buildConfig(c *cli.Context) (*Config, error) {
	cfg := &Config{
		Verbose:  c.Bool("verbose"),
		Capacity: c.Int("capacity"),
		Readers:  c.Int("readers"),
		Writers:  c.Int("writers"),
		Duration: c.Duration("duration"),
		MinDelay: c.Duration("min-delay"),
		MaxDelay: c.Duration("max-delay"),
		Match:    c.String("match"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the worker settings describe a runnable demo. The
// queue capacity is left to the queue constructor.
func (c *Config) Validate() error {
	var errs []error
	if c.Readers < 1 {
		errs = append(errs, fmt.Errorf("readers must be positive, got %d", c.Readers))
	}
	if c.Writers < 1 {
		errs = append(errs, fmt.Errorf("writers must be positive, got %d", c.Writers))
	}
	if c.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %s", c.Duration))
	}
	if c.MinDelay < 0 {
		errs = append(errs, fmt.Errorf("min-delay must not be negative, got %s", c.MinDelay))
	}
	if c.MaxDelay < c.MinDelay {
		errs = append(errs, fmt.Errorf("max-delay %s is below min-delay %s", c.MaxDelay, c.MinDelay))
	}
	return errors.Join(errs...)
}
