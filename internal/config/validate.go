package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePicker(); err != nil {
		return err
	}
	if err := c.validateOMDb(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePicker() error {
	if c.Picker.SeasonFloor < 1 {
		return errors.New("picker.season_floor must be at least 1")
	}
	if c.Picker.SeasonCeiling < c.Picker.SeasonFloor {
		return fmt.Errorf("picker.season_ceiling (%d) must not be below picker.season_floor (%d)",
			c.Picker.SeasonCeiling, c.Picker.SeasonFloor)
	}
	if c.Picker.MinRating < 0 || c.Picker.MinRating > 10 {
		return fmt.Errorf("picker.min_rating must be between 0 and 10, got %v", c.Picker.MinRating)
	}
	if c.Picker.ResultCount < 1 {
		return fmt.Errorf("picker.result_count must be at least 1, got %d", c.Picker.ResultCount)
	}
	return nil
}

func (c *Config) validateOMDb() error {
	// The API key is optional; without it the enrichment step is skipped.
	if c.OMDb.BaseURL == "" {
		return errors.New("omdb.base_url must be set")
	}
	if c.OMDb.TimeoutSeconds < 1 {
		return fmt.Errorf("omdb.timeout_seconds must be at least 1, got %d", c.OMDb.TimeoutSeconds)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
