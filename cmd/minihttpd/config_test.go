package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := writeConfig(t, `
[server]
host = "0.0.0.0"
port = 9000

[files]
dir = "`+dir+`"

[log]
level = "debug"
format = "json"
`)

	cfg, err := loadConfig(&CLI{Config: path})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, dir, cfg.Files.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(&CLI{})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 7890, cfg.Server.Port)
	assert.Equal(t, ".", cfg.Files.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfigCLIOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9000
`)

	cfg, err := loadConfig(&CLI{Config: path, Port: 9001, LogLevel: "warn"})
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	testcases := []struct {
		desc string
		cli  CLI
		data string
	}{
		{
			desc: "port out of range",
			data: "[server]\nport = 70000\n",
		},
		{
			desc: "unknown log level",
			data: "[log]\nlevel = \"verbose\"\n",
		},
		{
			desc: "unknown log format",
			data: "[log]\nformat = \"xml\"\n",
		},
		{
			desc: "files dir does not exist",
			data: "[files]\ndir = \"/no/such/dir\"\n",
		},
		{
			desc: "not valid toml",
			data: "[server\n",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			cli := tc.cli
			cli.Config = writeConfig(t, tc.data)

			_, err := loadConfig(&cli)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigExplicitPathMissing(t *testing.T) {
	_, err := loadConfig(&CLI{Config: "/no/such/config.toml"})
	assert.Error(t, err)
}
