package conf

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sjzar/mailstat/internal/errors"
)

// Defaults for knobs that are safe to leave unset.
const (
	DefaultOutputDir = "report"
	DefaultThreshold = 300
)

// Config holds every knob the CLI exposes. Values come from an optional
// config file, MAILSTAT_* environment variables, and command flags, in
// that order of increasing precedence.
type Config struct {
	DBPath    string `mapstructure:"db_path" json:"db_path"`
	OutputDir string `mapstructure:"output_dir" json:"output_dir"`
	Threshold int64  `mapstructure:"threshold" json:"threshold"`
	Actors    string `mapstructure:"actors" json:"actors"`
	Debug     bool   `mapstructure:"debug" json:"debug"`
}

// Load reads configuration from the given file (optional) and from the
// environment, applying defaults for unset keys.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	// Every key needs a default so env-only values survive Unmarshal.
	v.SetDefault("db_path", "")
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("threshold", DefaultThreshold)
	v.SetDefault("actors", "")
	v.SetDefault("debug", false)
	v.SetEnvPrefix("MAILSTAT")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields required to run a report.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.InvalidArg("db")
	}
	if c.Threshold < 0 {
		return errors.InvalidArg("threshold")
	}
	return nil
}
