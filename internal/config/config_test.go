// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvdet/internal/config"
	"github.com/katalvlaran/lvdet/matrix"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(config.New())
	require.NoError(t, err)

	require.Equal(t, 1, c.Threads)
	require.Equal(t, matrix.LU, c.Method)
	require.Equal(t, matrix.DefaultEpsilon, c.Epsilon)
	require.Equal(t, config.Log{Level: "info", Format: "console"}, c.Log)
	require.Equal(t, config.Bench{Iterations: 10, MaxThreads: 4, Sizes: []int{2, 4, 8}, Seed: 1, Kind: "random"}, c.Bench)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvdet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
threads: 6
method: laplace
log:
  format: json
bench:
  sizes: [3, 5]
  maxThreads: 2
`), 0o600))

	v := config.New()
	require.NoError(t, config.ReadFile(v, path))
	c, err := config.Load(v)
	require.NoError(t, err)

	require.Equal(t, 6, c.Threads)
	require.Equal(t, matrix.Laplace, c.Method)
	require.Equal(t, "json", c.Log.Format)
	require.Equal(t, []int{3, 5}, c.Bench.Sizes)
	require.Equal(t, 2, c.Bench.MaxThreads)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvdet.toml")
	require.NoError(t, os.WriteFile(path, []byte("threads = 3\n[bench]\nkind = \"hilbert\"\n"), 0o600))

	v := config.New()
	require.NoError(t, config.ReadFile(v, path))
	c, err := config.Load(v)
	require.NoError(t, err)

	require.Equal(t, 3, c.Threads)
	require.Equal(t, "hilbert", c.Bench.Kind)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LVDET_THREADS", "8")
	t.Setenv("LVDET_LOG_LEVEL", "debug")
	t.Setenv("LVDET_BENCH_SIZES", "2, 6,10")

	c, err := config.Load(config.New())
	require.NoError(t, err)

	require.Equal(t, 8, c.Threads)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, []int{2, 6, 10}, c.Bench.Sizes)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("LVDET_THREADS", "8")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("threads", 1, "")
	require.NoError(t, flags.Parse([]string{"--threads=12"}))

	v := config.New()
	require.NoError(t, v.BindPFlag(config.KeyThreads, flags.Lookup("threads")))
	c, err := config.Load(v)
	require.NoError(t, err)
	require.Equal(t, 12, c.Threads)
}

func TestLoad_ClampsThreads(t *testing.T) {
	v := config.New()
	v.Set(config.KeyThreads, -4)
	c, err := config.Load(v)
	require.NoError(t, err)
	require.Equal(t, 1, c.Threads)
}

func TestLoad_Invalid(t *testing.T) {
	v := config.New()
	v.Set(config.KeyMethod, "cramer")
	_, err := config.Load(v)
	require.ErrorIs(t, err, matrix.ErrUnknownMethod)

	v = config.New()
	v.Set(config.KeyEpsilon, -1.0)
	_, err = config.Load(v)
	require.Error(t, err)

	t.Setenv("LVDET_BENCH_SIZES", "2,x")
	_, err = config.Load(config.New())
	require.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	err := config.ReadFile(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}
