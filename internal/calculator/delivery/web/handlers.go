package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"date-mathematics/internal/calculator"
)

// Index renders a fresh form.
func (h *handler) Index(c *gin.Context) {
	h.render(c, calculator.DefaultFormState())
}

// Submit applies the posted action and re-renders the form. Bad input
// never produces an error page; the form comes back as it was.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	// Every field is text, so a bind error can only come from a malformed
	// body. Whatever did bind is still rendered back.
	var req formReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(ctx, "calculator.web.Submit: bind: %v", err)
	}

	state := req.toState()
	action, err := calculator.ParseAction(req.Action)
	if err != nil {
		h.l.Warnf(ctx, "calculator.web.Submit: %v", err)
		h.render(c, state)
		return
	}

	h.render(c, h.uc.Dispatch(ctx, state, action))
}

func (h *handler) render(c *gin.Context, s calculator.FormState) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     "index",
		Data:     newPageData(s),
	})
}
