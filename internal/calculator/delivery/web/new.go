package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"date-mathematics/internal/calculator"
	"date-mathematics/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the single-page calculator form.
type Handler interface {
	Index(c *gin.Context)
	Submit(c *gin.Context)
}

type handler struct {
	l    log.Logger
	uc   calculator.UseCase
	tmpl *template.Template
}

// New parses the embedded form template and creates the web handler.
func New(l log.Logger, uc calculator.UseCase) (*handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &handler{
		l:    l,
		uc:   uc,
		tmpl: tmpl,
	}, nil
}
