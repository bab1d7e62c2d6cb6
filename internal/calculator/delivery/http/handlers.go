package http

import (
	"github.com/gin-gonic/gin"

	"date-mathematics/pkg/response"
)

// Shift godoc
// @Summary     Add or subtract from a date
// @Description Shifts a start date-time by an amount of days, months or years. With exclude_weekends, days are counted as business days.
// @Tags        Calculator
// @Accept      json
// @Produce     json
// @Param       body body shiftReq true "Shift request"
// @Success     200  {object} shiftResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calculator/shift [POST]
func (h *handler) Shift(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processShiftReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Shift(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Shift: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newShiftResp(output))
}

// Diff godoc
// @Summary     Difference between two dates
// @Description Reports the distance from start to end (end taken at midnight) in days, months, years or business days.
// @Tags        Calculator
// @Accept      json
// @Produce     json
// @Param       body body diffReq true "Diff request"
// @Success     200  {object} diffResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calculator/diff [POST]
func (h *handler) Diff(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDiffReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()
	output, err := h.uc.Diff(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Diff: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDiffResp(input.Unit, output))
}

// Dispatch godoc
// @Summary     Apply a form action
// @Description Applies add, subtract, diff or mode:<addSub|diff> to a form state. Invalid input returns the state unchanged.
// @Tags        Calculator
// @Accept      json
// @Produce     json
// @Param       body body dispatchReq true "Form state and action"
// @Success     200  {object} dispatchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/calculator/dispatch [POST]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDispatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, action, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDispatchResp(h.uc.Dispatch(ctx, state, action)))
}

// Formats godoc
// @Summary     Supported formats and units
// @Description Lists the output date formats and the units accepted by shift and diff.
// @Tags        Calculator
// @Produce     json
// @Success     200 {object} formatsResp
// @Router      /api/v1/calculator/formats [GET]
func (h *handler) Formats(c *gin.Context) {
	response.OK(c, h.newFormatsResp())
}
