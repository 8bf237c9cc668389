package response

import (
	"fmt"
	"net/http"

	"insights-srv/pkg/discord"
	"insights-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp wraps data in the success envelope.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 with the success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Unauthorized sends the canonical 401 envelope.
func Unauthorized(c *gin.Context) {
	status, resp := parseError(errors.NewUnauthorizedHTTPError(), c, nil)
	c.JSON(status, resp)
}

// Error renders err through the envelope rules. Unrecognized errors become
// an opaque 500 and, when a reporter is configured, are forwarded to it
// with a stack trace.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	status, resp := parseError(err, c, d)
	c.JSON(status, resp)
}

// HttpError renders a known HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	status, resp := parseError(err, c, nil)
	c.JSON(status, resp)
}

// ErrorWithMap renders the mapped HTTPError when err is a known domain
// sentinel and falls back to Error otherwise.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr, nil)
		return
	}

	Error(c, err, nil)
}

// PanicError renders a recovered panic value as an internal error.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}

	Error(c, err, d)
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	switch e := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: e.Code,
			Message:   e.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    e.Errors(),
		}
	case *errors.HTTPError:
		status := e.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		return status, Resp{
			ErrorCode: e.Code,
			Message:   e.Message,
		}
	default:
		if d != nil {
			reportInternalError(c, d, err)
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}
