// SPDX-License-Identifier: MIT

// Package config resolves lvdet settings from defaults, an optional config
// file, LVDET_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdet/matrix"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LVDET_BENCH_SEED.
const EnvPrefix = "LVDET"

// Keys understood by Load.
const (
	KeyThreads         = "threads"
	KeyMethod          = "method"
	KeyEpsilon         = "epsilon"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyBenchIterations = "bench.iterations"
	KeyBenchMaxThreads = "bench.maxThreads"
	KeyBenchSizes      = "bench.sizes"
	KeyBenchSeed       = "bench.seed"
	KeyBenchKind       = "bench.kind"
)

// Config is the resolved configuration.
type Config struct {
	Threads int
	Method  matrix.Method
	Epsilon float64
	Log     Log
	Bench   Bench
}

// Log holds the logger settings.
type Log struct {
	Level  string
	Format string
}

// Bench holds the defaults of the bench command.
type Bench struct {
	Iterations int
	MaxThreads int
	Sizes      []int
	Seed       int64
	Kind       string
}

// New returns a viper instance carrying the lvdet defaults and reading
// LVDET_* environment overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyThreads, matrix.DefaultThreads)
	v.SetDefault(KeyMethod, matrix.DefaultMethod.String())
	v.SetDefault(KeyEpsilon, matrix.DefaultEpsilon)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyBenchIterations, 10)
	v.SetDefault(KeyBenchMaxThreads, 4)
	v.SetDefault(KeyBenchSizes, []int{2, 4, 8})
	v.SetDefault(KeyBenchSeed, 1)
	v.SetDefault(KeyBenchKind, "random")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile merges the config file at path into v. The format follows the
// file extension (yaml, json, toml).
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", path)
	}
	return nil
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	method, err := matrix.ParseMethod(v.GetString(KeyMethod))
	if err != nil {
		return nil, errors.WithMessage(err, "invalid config key "+KeyMethod)
	}

	eps := v.GetFloat64(KeyEpsilon)
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, errors.Errorf("invalid config key %s: %v is not a finite, non-negative number", KeyEpsilon, eps)
	}

	sizes, err := intSlice(v, KeyBenchSizes)
	if err != nil {
		return nil, err
	}

	return &Config{
		Threads: max(v.GetInt(KeyThreads), 1),
		Method:  method,
		Epsilon: eps,
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Bench: Bench{
			Iterations: v.GetInt(KeyBenchIterations),
			MaxThreads: v.GetInt(KeyBenchMaxThreads),
			Sizes:      sizes,
			Seed:       v.GetInt64(KeyBenchSeed),
			Kind:       v.GetString(KeyBenchKind),
		},
	}, nil
}

// intSlice reads key as a list of ints. Environment values arrive as a
// comma-separated string.
func intSlice(v *viper.Viper, key string) ([]int, error) {
	if s, ok := v.Get(key).(string); ok {
		var out []int
		for _, field := range strings.Split(s, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid config key %s", key)
			}
			out = append(out, n)
		}
		return out, nil
	}

	return v.GetIntSlice(key), nil
}
