package main

import (
	"bytes"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the generator tables source.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := newLogger(viper.GetViper())
			if err != nil {
				return err
			}
			defer lg.Sync()
			return writeTables(viper.GetString(keyOutput), lg)
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the generator tables source is up to date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := newLogger(viper.GetViper())
			if err != nil {
				return err
			}
			defer lg.Sync()
			return checkTables(viper.GetString(keyOutput), lg)
		},
	}
}

// Compute the tables and write them to the given path ("-" for standard
// output).
func writeTables(path string, lg *zap.Logger) error {
	start := time.Now()
	src := generateTables()
	lg.Debug("tables computed", zap.Duration("elapsed", time.Since(start)))

	if path == "-" {
		_, err := os.Stdout.Write(src)
		return errors.Wrap(err, "writing to standard output")
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	lg.Info("tables written", zap.String("path", path), zap.Int("bytes", len(src)))
	return nil
}

// Compare the tables source at the given path with freshly computed
// tables.
func checkTables(path string, lg *zap.Logger) error {
	cur, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	src := generateTables()
	if !bytes.Equal(cur, src) {
		lg.Warn("tables are stale", zap.String("path", path))
		return errors.Errorf("%s does not match the computed tables", path)
	}
	lg.Info("tables are up to date", zap.String("path", path))
	return nil
}
