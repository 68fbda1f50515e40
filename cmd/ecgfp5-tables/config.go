package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Configuration keys.
const (
	keyConfig   = "config"
	keyLogLevel = "log_level"
	keyOutput   = "output"
)

// Default location of the generated tables, relative to the module root.
const defaultOutput = "ecgfp5/tables.go"

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Configuration file (YAML, TOML or JSON)")
	fs.String("log-level", "info", "Logging level (debug, info, warn, error)")
	fs.StringP("output", "o", defaultOutput, "Path of the generated tables source ('-' for standard output)")
}

// Bind all flags of the set into the configuration, with '-' in flag
// names replaced by '_'.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// Read the configuration file, if one was specified.
func loadConfig(v *viper.Viper) error {
	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading configuration file %s", path)
	}
	return nil
}

// Build the logger from the configured level. Log output goes to
// standard error, so that generated source can be written to standard
// output.
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	lg, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return lg.Named("ecgfp5-tables"), nil
}
