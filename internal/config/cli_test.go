package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/VitiminV/bstdict/internal/datastruct/tree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommand_Flags(t *testing.T) {
	tcs := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *Config, req *Request)
	}{
		{
			name: "default values (no flags)",
			args: []string{"bstdict", "--clean", "--data", "data.toml"},
			assert: func(t *testing.T, cfg *Config, req *Request) {
				assert.Equal(t, zerolog.InfoLevel, *cfg.General.LogLevel)
				assert.False(t, *cfg.General.Silent)
				assert.Equal(t, tree.DuplicateReplace, *cfg.Dictionary.Duplicates)
				assert.Equal(t, uint16(0), *cfg.Dictionary.CacheSize)
				assert.Equal(t, OutputFormatTable, *cfg.Output.Format)
				assert.False(t, *cfg.Output.Metrics)

				assert.Equal(t, "data.toml", req.DataPath)
				assert.Empty(t, req.Search)
				assert.Empty(t, req.Delete)
				assert.False(t, req.Drain)
			},
		},
		{
			name: "all flags set with custom values",
			args: []string{
				"bstdict",
				"--clean",
				"-d", "data.toml",
				"--log-level", "debug",
				"--silent",
				"--duplicates", "reject",
				"--cache-size", "128",
				"--format", "plain",
				"--metrics",
				"--search", "5",
				"--search", "7",
				"--delete", "3",
				"--drain",
			},
			assert: func(t *testing.T, cfg *Config, req *Request) {
				assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
				assert.True(t, cfg.Silent())
				assert.Equal(t, tree.DuplicateReject, cfg.Duplicates())
				assert.Equal(t, 128, cfg.CacheSize())
				assert.Equal(t, OutputFormatPlain, cfg.Format())
				assert.True(t, cfg.Metrics())

				assert.Equal(t, []string{"5", "7"}, req.Search)
				assert.Equal(t, []string{"3"}, req.Delete)
				assert.True(t, req.Drain)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var gotCfg *Config
			var gotReq *Request
			cmd := CreateCommand(
				func(_ context.Context, _ string, cfg *Config, req *Request) error {
					gotCfg = cfg
					gotReq = req
					return nil
				},
				"test",
			)

			require.NoError(t, cmd.Run(context.Background(), tc.args))
			require.NotNil(t, gotCfg)
			tc.assert(t, gotCfg, gotReq)
		})
	}
}

func TestCreateCommand_Errors(t *testing.T) {
	tcs := []struct {
		name string
		args []string
	}{
		{name: "missing data", args: []string{"bstdict", "--clean"}},
		{name: "bad duplicates", args: []string{"bstdict", "--clean", "-d", "x", "--duplicates", "merge"}},
		{name: "bad format", args: []string{"bstdict", "--clean", "-d", "x", "--format", "json"}},
		{name: "bad log level", args: []string{"bstdict", "--clean", "-d", "x", "--log-level", "loud"}},
		{name: "cache size out of range", args: []string{"bstdict", "--clean", "-d", "x", "--cache-size", "70000"}},
		{name: "missing config file", args: []string{"bstdict", "-c", "/nonexistent/bstdict.toml", "-d", "x"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			cmd := CreateCommand(
				func(context.Context, string, *Config, *Request) error {
					called = true
					return nil
				},
				"test",
			)
			cmd.Writer = &bytes.Buffer{}
			cmd.ErrWriter = &bytes.Buffer{}

			assert.Error(t, cmd.Run(context.Background(), tc.args))
			assert.False(t, called)
		})
	}
}

func TestCreateCommand_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bstdict.toml")
	content := `
[general]
log-level = "warn"
silent = true

[dictionary]
duplicates = "ignore"
cache-size = 16

[output]
format = "plain"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var gotPath string
	var gotCfg *Config
	cmd := CreateCommand(
		func(_ context.Context, configPath string, cfg *Config, _ *Request) error {
			gotPath = configPath
			gotCfg = cfg
			return nil
		},
		"test",
	)

	args := []string{"bstdict", "-c", path, "-d", "x", "--format", "table", "--cache-size", "0"}
	require.NoError(t, cmd.Run(context.Background(), args))

	assert.Equal(t, path, gotPath)
	assert.Equal(t, zerolog.WarnLevel, gotCfg.LogLevel())
	assert.True(t, gotCfg.Silent())
	assert.Equal(t, tree.DuplicateIgnore, gotCfg.Duplicates())
	assert.Equal(t, 0, gotCfg.CacheSize())
	assert.Equal(t, OutputFormatTable, gotCfg.Format())
	assert.False(t, gotCfg.Metrics())
}

func TestCreateCommand_Version(t *testing.T) {
	var out bytes.Buffer
	called := false
	cmd := CreateCommand(
		func(context.Context, string, *Config, *Request) error {
			called = true
			return nil
		},
		"1.2.3",
	)
	cmd.Writer = &out

	require.NoError(t, cmd.Run(context.Background(), []string{"bstdict", "--version"}))
	assert.False(t, called)
	assert.Equal(t, "bstdict 1.2.3\n", out.String())
}
