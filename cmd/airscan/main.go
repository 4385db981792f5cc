package main

import (
	"airscan/internal/config"
	"airscan/internal/report"
	"airscan/internal/stations"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(os.Stderr, usageText)
			os.Exit(0)
		}
		failUsage(err.Error())
	}

	// Flag values override the config file and environment
	bindFlags(flags)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	detail, _ := flags.GetBool("detail")
	token, query, err := parseArgs(flags.Args(), cfg, detail)
	if err != nil {
		failUsage(err.Error())
	}

	svc := stations.NewService(token, cfg.API.Timeout, logger)

	readings, summary, err := svc.Query(query)
	if err != nil {
		logger.Error("query failed", "error", err)
		os.Exit(1)
	}

	if summary.Count == 0 {
		logger.Info("no stations matched the query")
	}

	// Only detail mode resolves a measurement other than the bounds PM2.5 field
	pollutant := stations.DefaultPollutant
	if query.Detail {
		pollutant = query.Pollutant
	}

	if err := report.Write(os.Stdout, readings, summary, pollutant); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}

func bindFlags(fs *pflag.FlagSet) {
	_ = viper.BindPFlag("api.pollutant", fs.Lookup("pollutant"))
	_ = viper.BindPFlag("api.timeout", fs.Lookup("timeout"))
	_ = viper.BindPFlag("log.level", fs.Lookup("log-level"))
	_ = viper.BindPFlag("log.format", fs.Lookup("log-format"))
}

func failUsage(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n\n", msg)
	fmt.Fprint(os.Stderr, usageText)
	os.Exit(2)
}
