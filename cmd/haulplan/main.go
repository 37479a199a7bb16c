package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/avelez/haulplan/internal/application"
	"github.com/avelez/haulplan/internal/config"
	"github.com/avelez/haulplan/internal/logging"
)

func main() {
	kingpinApp := kingpin.New("haulplan", "Delivery planner - turns per-location drop amounts into pickup and drop-off reports with 4/2/1 box breakdowns")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	locationsStr := kingpinApp.Flag("locations", "Comma-separated default location names (up to four)").String()
	planFile := kingpinApp.Flag("plan", "Path to a YAML plan file (skips the interactive prompts)").String()
	logLevel := kingpinApp.Flag("log-level", "Log verbosity: debug, info, warn, error").String()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := buildOverrides(*configFile, locationsStr, planFile, logLevel)

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger)
	if err := app.Run(os.Stdin, os.Stdout); err != nil {
		logger.Error("planning session failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// buildOverrides keeps only the flags the user actually set, so unset flags
// never shadow YAML or environment values.
func buildOverrides(configFile string, locationsStr, planFile, logLevel *string) *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile: configFile,
	}

	if *locationsStr != "" {
		overrides.LocationsStr = locationsStr
	}
	if *planFile != "" {
		overrides.PlanFile = planFile
	}
	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	return overrides
}
