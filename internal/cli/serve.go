package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"date-mathematics/config"
	"date-mathematics/internal/httpserver"
	"date-mathematics/pkg/log"
)

func newServeCmd() *cobra.Command {
	var configPath string

	c := &cobra.Command{
		Use:     "serve",
		Short:   "Start the HTTP server (form and JSON API)",
		Example: "datemath serve --config ./config/config.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return Serve(ctx, cfg)
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yaml; searched in ./config, . and /etc/app/ when empty")
	return c
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// Serve builds the logger and HTTP server from cfg and runs until ctx ends.
func Serve(ctx context.Context, cfg *config.Config) error {
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	logger.Info(ctx, "Starting Date Mathematics...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	srv, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		TrustedProxies:   cfg.HTTPServer.TrustedProxies,
		Timezone:         cfg.Calculator.Timezone,
		DefaultFormat:    cfg.Calculator.DefaultFormat,
		MaxAmount:        cfg.Calculator.MaxAmount,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
