package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// Output formats understood by the render package
var outputFormats = []string{"text", "json", "yaml", "csv"}

// Config represents application configuration
type Config struct {
	Log       LogConfig        `mapstructure:"log"`
	Output    OutputConfig     `mapstructure:"output"`
	Calendars []CalendarConfig `mapstructure:"calendars"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // Rotated JSON log file; console only when empty
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json, yaml or csv
}

// Load loads configuration from file. Without an explicit path a missing
// config file is not an error and defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("output.format", "text")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-calendar")
		v.AddConfigPath("/etc/holiday-calendar")
	}

	// Read environment variables, e.g. HOLIDAYCAL_LOG_LEVEL
	v.SetEnvPrefix("HOLIDAYCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
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

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration and reports every problem found
func (c *Config) Validate() error {
	var errs error

	if _, err := c.Log.ZapLevel(); err != nil {
		errs = multierr.Append(errs, err)
	}

	if !validFormat(c.Output.Format) {
		errs = multierr.Append(errs, fmt.Errorf("output.format must be one of %s, got '%s'",
			strings.Join(outputFormats, ", "), c.Output.Format))
	}

	seen := make(map[string]bool, len(c.Calendars))
	for i, cal := range c.Calendars {
		code := strings.ToUpper(strings.TrimSpace(cal.Code))
		if code == "" {
			errs = multierr.Append(errs, fmt.Errorf("calendars[%d].code is required", i))
			continue
		}
		if seen[code] {
			errs = multierr.Append(errs, fmt.Errorf("calendars[%d].code '%s' is defined twice", i, code))
		}
		seen[code] = true
		if strings.TrimSpace(cal.Name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("calendars[%d].name is required", i))
		}
	}

	return errs
}

func validFormat(format string) bool {
	for _, f := range outputFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// ZapLevel returns the configured log level, info when unset
func (c *LogConfig) ZapLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
