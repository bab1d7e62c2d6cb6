package usecase

import (
	"date-mathematics/pkg/datemath"
	"date-mathematics/pkg/log"
)

const defaultMaxAmount = 1_000_000

// Config tunes the calculator use case.
type Config struct {
	// DefaultFormat is used when a request names no or an unknown format.
	DefaultFormat string
	// MaxAmount bounds the absolute amount of a shift. Zero means the
	// package default.
	MaxAmount int
}

// implUseCase is the private implementation of calculator.UseCase.
type implUseCase struct {
	l             log.Logger
	parser        *datemath.Parser
	defaultFormat string
	maxAmount     int
}

// New creates a new calculator UseCase implementation.
func New(l log.Logger, parser *datemath.Parser, cfg Config) *implUseCase {
	if !datemath.IsSupportedFormat(cfg.DefaultFormat) {
		cfg.DefaultFormat = datemath.DefaultDateFormat
	}
	if cfg.MaxAmount <= 0 {
		cfg.MaxAmount = defaultMaxAmount
	}
	return &implUseCase{
		l:             l,
		parser:        parser,
		defaultFormat: cfg.DefaultFormat,
		maxAmount:     cfg.MaxAmount,
	}
}
