// Package config loads the demo host configuration through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"starrating/internal/rating"
)

// EnvPrefix is the prefix for environment overrides, e.g. STARRATING_SPACING.
// Only scalar keys (spacing, log.file, log.verbose) can be set from the
// environment; the ratings list comes from defaults, the config file or flags.
const EnvPrefix = "STARRATING"

// Config is the complete demo configuration
type Config struct {
	Ratings []RatingConfig `mapstructure:"ratings"`
	// Spacing is the gap between stars in cells
	Spacing float64   `mapstructure:"spacing"`
	Log     LogConfig `mapstructure:"log"`
}

// RatingConfig describes one rating control shown by the demo
type RatingConfig struct {
	ID       string `mapstructure:"id"`
	Label    string `mapstructure:"label"`
	Total    int    `mapstructure:"total"`
	Selected int    `mapstructure:"selected"`
}

// LogConfig controls where logs go
type LogConfig struct {
	// File receives log output; stdout belongs to the TUI
	File    string `mapstructure:"file"`
	Verbose bool   `mapstructure:"verbose"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Ratings: []RatingConfig{{
			ID:       "rating",
			Label:    "Rating",
			Total:    5,
			Selected: 1,
		}},
		Spacing: rating.DefaultSpacing,
		Log: LogConfig{
			File: "starrating.log",
		},
	}
}

// SetDefaults registers default values on v and enables env overrides
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ratings", []map[string]any{{
		"id":       d.Ratings[0].ID,
		"label":    d.Ratings[0].Label,
		"total":    d.Ratings[0].Total,
		"selected": d.Ratings[0].Selected,
	}})
	v.SetDefault("spacing", d.Spacing)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.verbose", d.Log.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals the configuration held by v, applies overrides in order and
// validates the result.
func Load(v *viper.Viper, overrides ...func(*Config)) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// ValidationError describes a single invalid field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found by Validate
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns every problem found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	if len(c.Ratings) == 0 {
		errs = append(errs, ValidationError{Field: "ratings", Message: "at least one rating is required"})
	}
	if c.Spacing < 0 {
		errs = append(errs, ValidationError{Field: "spacing", Message: "must not be negative"})
	}
	seen := make(map[string]bool)
	for i, r := range c.Ratings {
		field := fmt.Sprintf("ratings[%d]", i)
		if r.ID == "" {
			errs = append(errs, ValidationError{Field: field + ".id", Message: "is required"})
		} else if seen[r.ID] {
			errs = append(errs, ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate id %q", r.ID)})
		}
		seen[r.ID] = true
		if r.Total < rating.MinTotalStars || r.Total > rating.MaxTotalStars {
			errs = append(errs, ValidationError{
				Field:   field + ".total",
				Message: fmt.Sprintf("must be between %d and %d, got %d", rating.MinTotalStars, rating.MaxTotalStars, r.Total),
			})
		}
	}
	return errs
}
