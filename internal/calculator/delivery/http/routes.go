package http

import (
	"github.com/gin-gonic/gin"

	"date-mathematics/internal/middleware"
)

// RegisterRoutes maps the calculator endpoints. Calculation routes are
// rate limited per client; /formats is static and is not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/formats", h.Formats)

	calc := rg.Group("", mw.RateLimit())
	{
		calc.POST("/shift", h.Shift)
		calc.POST("/diff", h.Diff)
		calc.POST("/dispatch", h.Dispatch)
	}
}
