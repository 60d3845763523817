package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/username/cwver/internal/bisect"
	"github.com/username/cwver/internal/cwver"
)

const (
	defaultWorkdays    = "1,2,3,4,5"
	defaultCenturyBase = 2000
	defaultLogLevel    = "warn"
)

// Config represents application configuration
type Config struct {
	Workdays    string         `mapstructure:"workdays"`
	CenturyBase int            `mapstructure:"century_base"`
	Holidays    HolidaysConfig `mapstructure:"holidays"`
	Log         LogConfig      `mapstructure:"log"`
}

// HolidaysConfig lists calendar files whose entries override the weekday rule
type HolidaysConfig struct {
	Files []string `mapstructure:"files"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // empty = stderr
	Level string `mapstructure:"level"` // zap level name
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Workdays:    defaultWorkdays,
		CenturyBase: defaultCenturyBase,
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}

// Load loads configuration from file. An explicit configPath must exist;
// without one the default search locations are tried and a missing file
// yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("workdays", defaultWorkdays)
	v.SetDefault("century_base", defaultCenturyBase)
	v.SetDefault("holidays.files", []string{})
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", defaultLogLevel)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cwver")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cwver")
		v.AddConfigPath("/etc/cwver")
	}

	// Read environment variables, e.g. CWVER_WORKDAYS or CWVER_LOG_LEVEL
	v.SetEnvPrefix("cwver")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := bisect.ParsePolicy(c.Workdays); err != nil {
		return fmt.Errorf("workdays: %w", err)
	}

	if c.CenturyBase < 100 || c.CenturyBase%100 != 0 {
		return fmt.Errorf("century_base must be a positive multiple of 100, got %d", c.CenturyBase)
	}

	for i, f := range c.Holidays.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("holidays.files[%d] is empty", i)
		}
	}

	return nil
}

// WorkdayPolicy returns the parsed workday policy
func (c *Config) WorkdayPolicy() (bisect.WorkdayPolicy, error) {
	return bisect.ParsePolicy(c.Workdays)
}

// Converter returns the version converter for the configured century
func (c *Config) Converter() cwver.Converter {
	return cwver.NewConverter(cwver.FixedCentury{Base: c.CenturyBase})
}

// ExpandEnvVars expands environment variables in config paths
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	for i, f := range c.Holidays.Files {
		c.Holidays.Files[i] = os.ExpandEnv(f)
	}
}
