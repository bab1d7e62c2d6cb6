package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	calculatorHTTP "date-mathematics/internal/calculator/delivery/http"
	calculatorWeb "date-mathematics/internal/calculator/delivery/web"
	calculatorUC "date-mathematics/internal/calculator/usecase"
	"date-mathematics/internal/middleware"
	"date-mathematics/pkg/datemath"
)

// setupCalculatorDomain wires the calculator use case to the JSON API
// under /api/v1/calculator and the HTML form at /.
func (srv HTTPServer) setupCalculatorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Parser
	parser, err := datemath.NewParser(srv.timezone)
	if err != nil {
		return fmt.Errorf("calculator timezone: %w", err)
	}

	// 2. UseCase
	uc := calculatorUC.New(srv.l, parser, calculatorUC.Config{
		DefaultFormat: srv.defaultFormat,
		MaxAmount:     srv.maxAmount,
	})

	// 3. Handlers
	h := calculatorHTTP.New(srv.l, uc)
	web, err := calculatorWeb.New(srv.l, uc)
	if err != nil {
		return fmt.Errorf("calculator templates: %w", err)
	}

	// 4. Routes
	calculatorHTTP.RegisterRoutes(api.Group("/calculator"), h, mw)
	calculatorWeb.RegisterRoutes(srv.gin.Group(""), web, mw)

	srv.l.Infof(ctx, "Calculator domain registered (timezone=%s)", parser.Location())
	return nil
}
