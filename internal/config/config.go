package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Pickers   []PickerConfig
	Telemetry TelemetryConfig
	Log       LogConfig
}

// PickerConfig describes one value field and its options.
type PickerConfig struct {
	Title    string
	Selected string
	Options  []OptionConfig
}

// OptionConfig is one selectable option. ID must be unique within a picker;
// Value defaults to ID.
type OptionConfig struct {
	ID    string
	Value string
}

// TelemetryConfig holds OTLP export settings.
type TelemetryConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool
}

// LogConfig holds debug log settings.
type LogConfig struct {
	File string // empty discards log output
}

// Load reads configuration from file and env. Env var overrides use prefix TUIKIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "tuikit")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("TUIKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tuikit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TUIKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path must exist; the default location is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// normalize fills option values that were left empty.
func (c *Config) normalize() {
	for i := range c.Pickers {
		for j := range c.Pickers[i].Options {
			o := &c.Pickers[i].Options[j]
			if o.Value == "" {
				o.Value = o.ID
			}
		}
	}
}

// Validate checks that every picker has options and that option IDs are
// unique within a picker. Duplicate values are allowed.
func (c Config) Validate() error {
	for i, p := range c.Pickers {
		name := p.Title
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if len(p.Options) == 0 {
			return fmt.Errorf("picker %s: no options", name)
		}
		seen := make(map[string]bool, len(p.Options))
		for _, o := range p.Options {
			if o.ID == "" {
				return fmt.Errorf("picker %s: option with empty id", name)
			}
			if seen[o.ID] {
				return fmt.Errorf("picker %s: duplicate option id %q", name, o.ID)
			}
			seen[o.ID] = true
		}
	}
	return nil
}
