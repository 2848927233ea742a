// ABOUTME: Beep configuration defaults and validation
// ABOUTME: Loads defaults and PCBEEP_* environment overrides with viper
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Resonate-Protocol/pcbeep/pkg/beep"
	"github.com/spf13/viper"
)

const (
	DefaultFrequency = 440
	DefaultDuration  = 1000

	// EnvPrefix is prepended to environment overrides (PCBEEP_FREQUENCY, ...)
	EnvPrefix = "PCBEEP"
)

// Config holds a validated beep invocation
type Config struct {
	Frequency uint64
	Duration  uint64
	Verbose   bool
	Device    string
}

// ConfigurationError reports a malformed or out-of-range setting
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("parsing %s failed: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Load returns the defaults with any environment overrides applied.
// No configuration file is read.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("frequency", DefaultFrequency)
	v.SetDefault("duration", DefaultDuration)
	v.SetDefault("verbose", false)
	v.SetDefault("device", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	frequency, err := parseUint(v, "frequency")
	if err != nil {
		return nil, err
	}
	duration, err := parseUint(v, "duration")
	if err != nil {
		return nil, err
	}
	verbose, err := strconv.ParseBool(v.GetString("verbose"))
	if err != nil {
		return nil, &ConfigurationError{Field: "verbose", Err: err}
	}

	cfg := &Config{
		Frequency: frequency,
		Duration:  duration,
		Verbose:   verbose,
		Device:    v.GetString("device"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseUint reads key as a string so malformed values are reported rather
// than silently becoming zero
func parseUint(v *viper.Viper, key string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(v.GetString(key)), 10, 32)
	if err != nil {
		return 0, &ConfigurationError{Field: key, Err: err}
	}
	return n, nil
}

// Validate checks that frequency and duration fit the device's 32-bit range.
// No tighter bound is enforced.
func (c *Config) Validate() error {
	if c.Frequency > math.MaxUint32 {
		return &ConfigurationError{
			Field: "frequency",
			Err:   fmt.Errorf("%d exceeds %d", c.Frequency, uint64(math.MaxUint32)),
		}
	}
	if c.Duration > math.MaxUint32 {
		return &ConfigurationError{
			Field: "duration",
			Err:   fmt.Errorf("%d exceeds %d", c.Duration, uint64(math.MaxUint32)),
		}
	}
	return nil
}

// Request converts a validated config into a beep request
func (c *Config) Request() beep.Request {
	return beep.Request{
		FrequencyHz: uint32(c.Frequency),
		DurationMs:  uint32(c.Duration),
	}
}
