package http

import (
	"github.com/gin-gonic/gin"
)

// processShiftReq binds and validates the shift request body.
func (h *handler) processShiftReq(c *gin.Context) (shiftReq, error) {
	var req shiftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calculator.http.processShiftReq: %v", err)
		return req, errWrongBody
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

// processDiffReq binds and validates the diff request body.
func (h *handler) processDiffReq(c *gin.Context) (diffReq, error) {
	var req diffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calculator.http.processDiffReq: %v", err)
		return req, errWrongBody
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

// processDispatchReq binds and validates the dispatch request body.
func (h *handler) processDispatchReq(c *gin.Context) (dispatchReq, error) {
	var req dispatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calculator.http.processDispatchReq: %v", err)
		return req, errWrongBody
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}
