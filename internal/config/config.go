// Package config loads flatmates settings from flags, env vars, an optional
// YAML file and a .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every env var, e.g. FLATMATES_OUTPUT_DIR.
const EnvPrefix = "FLATMATES"

// Config holds the settings of one run.
type Config struct {
	// OutputDir is where the PDF report is written. Created on demand.
	OutputDir string `mapstructure:"output_dir"`

	// Filename is the report base name; ".pdf" is appended.
	Filename string `mapstructure:"filename"`

	// Image is an optional picture drawn above the report title.
	Image string `mapstructure:"image"`

	// Open opens the report in the default viewer once written.
	Open bool `mapstructure:"open"`

	// LogLevel is empty unless set, so logging falls back to LOG_LEVEL.
	LogLevel string `mapstructure:"log_level"`

	// MetricsFile, when set, receives run metrics in Prometheus text format.
	MetricsFile string `mapstructure:"metrics_file"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		OutputDir: "output",
		Filename:  "Report",
		Open:      true,
	}
}

// Load builds a Config. Flags that were explicitly set win over env vars,
// which win over configFile, which wins over Defaults. The flag names are
// the config keys with "_" replaced by "-". A missing .env file is not an error.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	d := Defaults()
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("filename", d.Filename)
	v.SetDefault("image", d.Image)
	v.SetDefault("open", d.Open)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("metrics_file", d.MetricsFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for _, key := range []string{"output_dir", "filename", "image", "open", "log_level", "metrics_file"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.OutputDir) == "" {
		problems = append(problems, "output_dir must not be empty")
	}
	if strings.TrimSpace(c.Filename) == "" {
		problems = append(problems, "filename must not be empty")
	} else if strings.ContainsAny(c.Filename, `/\`) {
		problems = append(problems, fmt.Sprintf("filename %q must not contain path separators", c.Filename))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
