package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"date-mathematics/config"
	_ "date-mathematics/docs" // Swagger docs
	"date-mathematics/internal/cli"
)

// @title       Date Mathematics API
// @description Date arithmetic, business-day shifting and date differences.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Logger, HTTP server, run
	return cli.Serve(ctx, cfg)
}
