package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/TFMV/ProjectAddressCheck/pkg/config"
	"github.com/TFMV/ProjectAddressCheck/pkg/db"
	"github.com/TFMV/ProjectAddressCheck/pkg/utils"
)

func main() {
	start := time.Now()

	// Get the CSV file path from command-line arguments
	csvFilePath := flag.String("csv", "", "Path to the CSV file")
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

	if *csvFilePath == "" {
		logger.Fatal("CSV file path is required")
	}

	file, err := os.Open(*csvFilePath)
	if err != nil {
		logger.Fatal("Error opening file", "path", *csvFilePath, "error", err)
	}
	defer file.Close()

	pool, err := db.NewConnection(context.Background(), cfg.Creds())
	if err != nil {
		logger.Fatal("Unable to create connection pool", "error", err)
	}
	defer pool.Close()

	copyCount, err := db.LoadProjectsCSV(context.Background(), pool, cfg.DBCreds.LoadTable, file)
	if err != nil {
		logger.Fatal("Error copying data to database", "error", err)
	}

	logger.Info("Copied rows", "rows", copyCount, "table", cfg.DBCreds.LoadTable, "elapsed", time.Since(start).String())
}
