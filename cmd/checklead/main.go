package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/TFMV/ProjectAddressCheck/internal/matcher"
	"github.com/TFMV/ProjectAddressCheck/pkg/config"
	"github.com/TFMV/ProjectAddressCheck/pkg/db"
	"github.com/TFMV/ProjectAddressCheck/pkg/notify"
	"github.com/TFMV/ProjectAddressCheck/pkg/utils"
)

func main() {
	address := flag.String("address", "123 East 23rd Street", "Mailing street of the lead to check")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LogOptions{JSON: cfg.Log.JSON, File: cfg.Log.File})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	pool, err := db.NewConnection(context.Background(), cfg.Creds())
	if err != nil {
		logger.Fatal("Unable to create connection pool", "error", err)
	}
	defer pool.Close()

	source := db.NewProjectSource(pool)
	source.KeyColumn = cfg.Check.KeyColumn

	checker := matcher.NewChecker(source, notify.WriterSink{W: os.Stdout}, logger)
	checker.Query = cfg.Query()

	result := checker.Check(context.Background(), matcher.NewLeadRecord(cfg.Check.Field, *address))
	logger.Info("Address check finished", "status", result.Status, "scanned", result.Scanned)
}
