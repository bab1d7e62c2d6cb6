package http

import (
	"github.com/gin-gonic/gin"

	"date-mathematics/internal/calculator"
	"date-mathematics/pkg/log"
)

// Handler is the public interface for the calculator JSON API.
type Handler interface {
	Shift(c *gin.Context)
	Diff(c *gin.Context)
	Dispatch(c *gin.Context)
	Formats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calculator.UseCase
}

// New creates a new HTTP handler for the calculator domain.
func New(l log.Logger, uc calculator.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
