// Package config loads the falloff command's settings from defaults, an
// optional YAML file, environment variables and flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"honnef.co/go/falloff"
)

// EnvPrefix prefixes environment variables, e.g. FALLOFF_POTENTIAL_KIND.
const EnvPrefix = "FALLOFF"

// Output formats.
const (
	FormatAuto  = "auto"
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Potential PotentialConfig `mapstructure:"potential" yaml:"potential"`
	Sample    SampleConfig    `mapstructure:"sample" yaml:"sample"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
}

type PotentialConfig struct {
	Kind         string  `mapstructure:"kind" yaml:"kind"`
	ActionLength float64 `mapstructure:"action_length" yaml:"action_length"`
}

type SampleConfig struct {
	// Count is the number of intervals; Count+1 samples are taken.
	Count   int `mapstructure:"count" yaml:"count"`
	Workers int `mapstructure:"workers" yaml:"workers"`
	// ByLength spaces samples evenly in arclength rather than in the
	// curve parameter.
	ByLength bool `mapstructure:"by_length" yaml:"by_length"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("potential.kind", falloff.KindBezier.String())
	v.SetDefault("potential.action_length", 20.0)
	v.SetDefault("sample.count", 20)
	v.SetDefault("sample.workers", 0)
	v.SetDefault("sample.by_length", false)
	v.SetDefault("output.format", FormatAuto)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
}

// Load reads cfgFile, if not empty, and the environment into v, then
// returns the validated configuration. Defaults must already be set and
// flags bound.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that cannot be checked by their type.
func (c *Config) Validate() error {
	var errs []error
	if _, err := falloff.ParseKind(c.Potential.Kind); err != nil {
		errs = append(errs, err)
	}
	if err := falloff.CheckParameters(0, c.Potential.ActionLength); err != nil {
		errs = append(errs, err)
	}
	if c.Sample.Count < 1 {
		errs = append(errs, fmt.Errorf("sample.count must be at least 1, got %d", c.Sample.Count))
	}
	if c.Sample.Workers < 0 {
		errs = append(errs, fmt.Errorf("sample.workers must not be negative, got %d", c.Sample.Workers))
	}
	switch c.Output.Format {
	case FormatAuto, FormatTable, FormatYAML, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown output.format %q", c.Output.Format))
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown logger.format %q", c.Logger.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Kind returns the parsed potential kind. Only valid after Validate.
func (c *Config) Kind() falloff.Kind {
	k, err := falloff.ParseKind(c.Potential.Kind)
	if err != nil {
		panic(err)
	}
	return k
}
