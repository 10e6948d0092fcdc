package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/cli"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/config"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/service"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	store, err := storage.NewStore(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}
	defer store.Close()

	repo := storage.NewLogRepository(store, logger)
	app := cli.NewApp(cfg, logger, repo)

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "Please fix:")
			for _, msg := range verr.Errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", msg)
			}
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
