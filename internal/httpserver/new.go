package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"date-mathematics/internal/middleware"
	"date-mathematics/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Calculator domain
	timezone      string
	defaultFormat string
	maxAmount     int

	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	// TrustedProxies may set X-Forwarded-For. Empty trusts none, so the
	// rate limiter keys on the peer address.
	TrustedProxies []string

	// Calculator domain
	Timezone      string
	DefaultFormat string
	MaxAmount     int

	// Rate limiting for calculation routes
	RateLimitEnabled bool
	RequestsPerMin   int
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		timezone:      cfg.Timezone,
		defaultFormat: cfg.DefaultFormat,
		maxAmount:     cfg.MaxAmount,
		middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimitEnabled,
			RequestsPerMin:   cfg.RequestsPerMin,
		},
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
