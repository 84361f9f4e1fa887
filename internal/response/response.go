// Package response writes the JSON envelope shared by every HTTP endpoint.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)

// Error codes carried in Resp.ErrorCode.
const (
	TooFewLinesCode         = 1001
	UncommonPatternCode     = 1002
	BadRequestCode          = 1003
	PayloadTooLargeCode     = 413
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

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

// Error sends a 400 response carrying code and the error message.
func Error(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		ErrorCode: code,
		Message:   err.Error(),
	})
}

// PayloadTooLarge sends 413 response.
func PayloadTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, Resp{
		ErrorCode: PayloadTooLargeCode,
		Message:   "Request body too large",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests",
	})
}

// InternalError sends 500 internal server error. The error itself is not
// exposed to the client.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
