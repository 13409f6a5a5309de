package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/ini.v1"

	"rotatemac/internal/rotation"
)

// DefaultFile is read when no config file is given and it exists.
const DefaultFile = "/etc/rotatemac.ini"

const envPrefix = "ROTATEMAC_"

// Config holds all application configuration
type Config struct {
	DeviceName     string
	CycleSeconds   int
	DryRun         bool
	MaxFailures    int
	ResetOnSuccess bool
	LogLevel       string
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		DeviceName:     "eth0",
		CycleSeconds:   30 * 60,
		DryRun:         false,
		MaxFailures:    3,
		ResetOnSuccess: false,
		LogLevel:       "info",
	}
}

// LoadFromFile loads configuration from the default section of an INI file
func (c *Config) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filename)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", filename, err)
	}

	section := cfg.Section("")
	c.DeviceName = section.Key("devicename").MustString(c.DeviceName)
	c.LogLevel = section.Key("loglevel").MustString(c.LogLevel)

	if err := parseIntKey(section, "cyclesecs", &c.CycleSeconds); err != nil {
		return err
	}
	if err := parseIntKey(section, "maxfailures", &c.MaxFailures); err != nil {
		return err
	}
	if section.HasKey("dryrun") {
		c.DryRun = IsAffirmative(section.Key("dryrun").String())
	}
	if section.HasKey("resetonsuccess") {
		c.ResetOnSuccess = IsAffirmative(section.Key("resetonsuccess").String())
	}

	return nil
}

func parseIntKey(section *ini.Section, name string, dst *int) error {
	if !section.HasKey(name) {
		return nil
	}
	v, err := section.Key(name).Int()
	if err != nil {
		return fmt.Errorf("invalid %s in config file: %w", name, err)
	}
	*dst = v
	return nil
}

// LoadFromEnv loads configuration from ROTATEMAC_* environment variables
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv(envPrefix + "DEVICE_NAME"); v != "" {
		c.DeviceName = v
	}
	if v := os.Getenv(envPrefix + "CYCLE_SECS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sCYCLE_SECS: %w", envPrefix, err)
		}
		c.CycleSeconds = n
	}
	if v := os.Getenv(envPrefix + "DRY_RUN"); v != "" {
		c.DryRun = IsAffirmative(v)
	}
	if v := os.Getenv(envPrefix + "MAX_FAILURES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sMAX_FAILURES: %w", envPrefix, err)
		}
		c.MaxFailures = n
	}
	if v := os.Getenv(envPrefix + "RESET_ON_SUCCESS"); v != "" {
		c.ResetOnSuccess = IsAffirmative(v)
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate rejects values the rotation loop cannot run with.
func (c *Config) Validate() error {
	var err error
	if strings.TrimSpace(c.DeviceName) == "" {
		err = multierr.Append(err, errors.New("device name must not be empty"))
	}
	if c.CycleSeconds < 0 {
		err = multierr.Append(err, fmt.Errorf("cycle seconds must not be negative, got %d", c.CycleSeconds))
	}
	if int64(c.CycleSeconds) > rotation.MaxCycleSeconds {
		err = multierr.Append(err, fmt.Errorf("cycle seconds must not exceed %d, got %d", rotation.MaxCycleSeconds, c.CycleSeconds))
	}
	if c.MaxFailures < 0 {
		err = multierr.Append(err, fmt.Errorf("max failures must not be negative, got %d", c.MaxFailures))
	}
	return err
}

// New creates a configuration from defaults, an optional INI file and the environment.
// An explicitly named file must exist; DefaultFile is skipped when missing.
func New(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	file := configFile
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		if err := cfg.LoadFromFile(file); err != nil {
			return nil, err
		}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsAffirmative reports whether s is one of t, y, yes, 1 or true, ignoring case.
func IsAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "y", "yes", "1", "true":
		return true
	default:
		return false
	}
}
