package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "date-mathematics/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError anywhere in the
// chain decides the status and code; anything else is a 400 with code 1.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status := httpErr.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		c.JSON(status, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
			Data:      data,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: DefaultErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: pkgErrors.ErrTooManyRequests.Code,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
