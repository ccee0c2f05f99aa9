// Package config loads lanedot settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-lanedot/hwy"
	"github.com/ajroetker/go-lanedot/hwy/contrib/dot"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Bench BenchConfig `mapstructure:"bench"`
	Log   LogConfig   `mapstructure:"log"`
}

type BenchConfig struct {
	Size       int      `mapstructure:"size"`
	Runs       int      `mapstructure:"runs"`
	Algorithms []string `mapstructure:"algorithms"`
	Format     string   `mapstructure:"format"`
	Tolerance  float64  `mapstructure:"tolerance"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Bench: BenchConfig{
			Size:       1 << 13,
			Runs:       5,
			Algorithms: algorithmNames(dot.Algorithms()),
			Format:     "table",
			Tolerance:  1e-4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func algorithmNames(algos []dot.Algorithm) []string {
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.String()
	}
	return names
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("bench-size", defaults.Bench.Size, "Vector length (multiple of the lane width)")
	fs.Int("bench-runs", defaults.Bench.Runs, "Timed runs per algorithm")
	fs.StringSlice("bench-algorithms", defaults.Bench.Algorithms, "Algorithms to run: scalar-lanes|mulreduce-lanes|accumulate-lanes")
	fs.String("bench-format", defaults.Bench.Format, "Report format: table|json|yaml")
	fs.Float64("bench-tolerance", defaults.Bench.Tolerance, "Fail when an algorithm's relative error exceeds this (0 = disabled)")
	fs.String("log-level", defaults.Log.Level, "Log level: trace|debug|info|warn|error")
	fs.String("log-format", defaults.Log.Format, "Log format: text|json")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("LANEDOT")
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("lanedot")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("bench.size", c.Bench.Size)
	v.SetDefault("bench.runs", c.Bench.Runs)
	v.SetDefault("bench.algorithms", c.Bench.Algorithms)
	v.SetDefault("bench.format", c.Bench.Format)
	v.SetDefault("bench.tolerance", c.Bench.Tolerance)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
}

// flagKeys maps config keys to the flag names registered by RegisterFlags.
var flagKeys = map[string]string{
	"bench.size":       "bench-size",
	"bench.runs":       "bench-runs",
	"bench.algorithms": "bench-algorithms",
	"bench.format":     "bench-format",
	"bench.tolerance":  "bench-tolerance",
	"log.level":        "log-level",
	"log.format":       "log-format",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Validate checks the settings that flags alone cannot express, such as the
// vector size being a multiple of the compiled lane width.
func (c Config) Validate() error {
	var errs []error
	if c.Bench.Size <= 0 || c.Bench.Size%hwy.LaneWidth != 0 {
		errs = append(errs, fmt.Errorf("bench.size %d must be a positive multiple of the lane width %d (%s build)",
			c.Bench.Size, hwy.LaneWidth, hwy.LaneTarget))
	}
	if c.Bench.Runs < 1 {
		errs = append(errs, fmt.Errorf("bench.runs must be at least 1, got %d", c.Bench.Runs))
	}
	switch c.Bench.Format {
	case "table", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("bench.format must be table, json or yaml, got %q", c.Bench.Format))
	}
	if c.Bench.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("bench.tolerance must not be negative, got %g", c.Bench.Tolerance))
	}
	if _, err := c.Algorithms(); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, c.Log.check()...)
	return joinInvalid(errs)
}

// Validate checks the log settings alone. Commands that never read the
// bench settings validate only these.
func (c LogConfig) Validate() error {
	return joinInvalid(c.check())
}

func (c LogConfig) check() []error {
	var errs []error
	if _, err := logrus.ParseLevel(c.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Format))
	}
	return errs
}

func joinInvalid(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Algorithms parses Bench.Algorithms. An empty list selects every algorithm.
func (c Config) Algorithms() ([]dot.Algorithm, error) {
	if len(c.Bench.Algorithms) == 0 {
		return dot.Algorithms(), nil
	}
	algos := make([]dot.Algorithm, 0, len(c.Bench.Algorithms))
	for _, name := range c.Bench.Algorithms {
		a, err := dot.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}
	return algos, nil
}
