package web

import (
	"github.com/gin-gonic/gin"

	"date-mathematics/internal/middleware"
)

// RegisterRoutes mounts the form at the group root.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/", h.Index)
	rg.POST("/", mw.RateLimit(), h.Submit)
}
