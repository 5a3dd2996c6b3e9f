package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/willythepapi/FITART-v1/config"
	"github.com/willythepapi/FITART-v1/internal/app"
	"github.com/willythepapi/FITART-v1/internal/logger"
)

var (
	configFile string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:           "fitart",
	Short:         "fitart manages ZenithFit data from your terminal",
	Long:          "fitart exports, inspects and resets the ZenithFit database and looks up foods and daily targets.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to a SQLite database (overrides the configured storage)")
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
			return nil, err
		}
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.StorageDriver = config.DriverSQLite
		cfg.SQLitePath = dbPath
	}
	return cfg, nil
}

func withApp(ctx context.Context, run func(*app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// stdout carries command output
	logger.InitConsole(cfg.Log, os.Stderr)
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return run(a)
}
