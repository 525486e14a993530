package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/errors"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Unauthorized aborts with 401.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: CodeUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Error writes err as a JSON error body. HTTPError and ValidationErrors keep their code and message;
// anything else becomes a 500. Every 5xx is reported to Discord when d is not nil.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	var validationErrs errors.ValidationErrors
	switch {
	case stderrors.As(err, &httpErr):
		status := httpErr.StatusCode
		if status < 100 || status > 599 {
			status = http.StatusBadRequest
		}
		if status >= http.StatusInternalServerError && d != nil {
			reportAsync(d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
		}
		c.AbortWithStatusJSON(status, Resp{ErrorCode: httpErr.Code, Message: httpErr.Message})
	case stderrors.As(err, &validationErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
			ErrorCode: CodeValidation,
			Message:   validationErrs.Error(),
			Errors:    validationErrs,
		})
	default:
		if d != nil {
			reportAsync(d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{ErrorCode: CodeInternal, Message: MessageInternal})
	}
}

// ErrorWithMap resolves err through m before writing it.
func ErrorWithMap(c *gin.Context, err error, m ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range m {
		if stderrors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// PanicError writes a 500 for a recovered panic and reports the stack trace.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	if d != nil {
		reportAsync(d, fmt.Sprintf("panic on %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, rec, debug.Stack()))
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{ErrorCode: CodeInternal, Message: MessageInternal})
}

func reportAsync(d discord.IDiscord, msg string) {
	go func() {
		_ = d.ReportBug(context.Background(), msg)
	}()
}
