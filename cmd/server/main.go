package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TFMV/ProjectAddressCheck/pkg/api"
	"github.com/TFMV/ProjectAddressCheck/pkg/config"
	"github.com/TFMV/ProjectAddressCheck/pkg/db"
	"github.com/TFMV/ProjectAddressCheck/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LogOptions{JSON: cfg.Log.JSON, File: cfg.Log.File, Async: cfg.Log.Async})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	// Create the database connection pool
	pool, err := db.NewConnection(context.Background(), cfg.Creds())
	if err != nil {
		logger.Fatal("Failed to create database connection pool", "error", err)
	}
	defer pool.Close()

	source := db.NewProjectSource(pool)
	source.KeyColumn = cfg.Check.KeyColumn

	// Set up the HTTP server
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, api.NewHandler(source, cfg.Query(), logger))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", "address", cfg.Server.Addr, "module", cfg.Check.Module, "field", cfg.Check.Field)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Error during server shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
