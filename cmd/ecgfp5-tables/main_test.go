package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestGeneratedTablesUpToDate(t *testing.T) {
	cur, err := os.ReadFile(filepath.Join("..", "..", defaultOutput))
	require.NoError(t, err)
	require.Equal(t, string(cur), string(generateTables()))
}

func TestWriteAndCheckTables(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	lg := zap.New(core)
	path := filepath.Join(t.TempDir(), "tables.go")

	require.Error(t, checkTables(path, lg))

	require.NoError(t, writeTables(path, lg))
	require.Equal(t, 1, logs.FilterMessage("tables written").Len())
	require.NoError(t, checkTables(path, lg))
	require.Equal(t, 1, logs.FilterMessage("tables are up to date").Len())

	require.NoError(t, os.WriteFile(path, []byte("package ecgfp5\n"), 0644))
	err := checkTables(path, zaptest.NewLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not match")
}

func TestConfig(t *testing.T) {
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addGlobalFlags(fs)
	bindFlags(v, fs)
	require.NoError(t, loadConfig(v))
	require.Equal(t, defaultOutput, v.GetString(keyOutput))
	require.Equal(t, "info", v.GetString(keyLogLevel))

	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "-o", "-"}))
	require.Equal(t, "-", v.GetString(keyOutput))
	lg, err := newLogger(v)
	require.NoError(t, err)
	require.True(t, lg.Core().Enabled(zapcore.DebugLevel))

	// Configuration file; explicit flags still take precedence.
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tables.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: out.go\nlog_level: warn\n"), 0644))
	v = viper.New()
	fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	addGlobalFlags(fs)
	bindFlags(v, fs)
	require.NoError(t, fs.Parse([]string{"--config", cfg, "--log-level", "error"}))
	require.NoError(t, loadConfig(v))
	require.Equal(t, "out.go", v.GetString(keyOutput))
	require.Equal(t, "error", v.GetString(keyLogLevel))

	v.Set(keyLogLevel, "verbose")
	_, err = newLogger(v)
	require.Error(t, err)

	v = viper.New()
	v.Set(keyConfig, filepath.Join(dir, "missing.yaml"))
	require.Error(t, loadConfig(v))
}
