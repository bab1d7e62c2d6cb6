package log_test

import (
	"context"
	"testing"

	"date-mathematics/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-123")
	if got := log.RequestID(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "console debug", cfg: log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true}},
		{name: "json production", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "unknown level", cfg: log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger, got nil")
			}
			ctx := log.WithRequestID(context.Background(), "abc")
			l.Infof(ctx, "calculation %s", "ok")
			l.Debug(ctx, "debug line")
		})
	}
}
