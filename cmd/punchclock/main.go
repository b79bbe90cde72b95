package main

import (
	"fmt"
	"os"

	"punchclock/internal/api"
	"punchclock/internal/cli"
	"punchclock/internal/clock"
	"punchclock/internal/config"
	"punchclock/internal/logging"
	"punchclock/internal/repository/sqlite"
	"punchclock/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Application.Verbose)

	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving time zone: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDatabaseDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing database directory: %v\n", err)
		os.Exit(1)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	resolver := clock.NewResolver(loc)
	spans := store.New(repo)
	apiInstance := api.New(spans, resolver, logger)

	root := cli.NewRootCommand(apiInstance, cfg, logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
