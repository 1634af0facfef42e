package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"customerweb/internal/core/apperror"
	"customerweb/pkg/logger"
)

// Exception middleware is the last line of error handling.
// It recovers panics and picks up errors registered by handlers with
// c.Error; both are logged and the browser is redirected to errorPath.
// Nothing is done when the handler already wrote a response.
func Exception(errorPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := apperror.NewInternal(fmt.Errorf("panic: %v", rec)).
					WithDetail("stack", string(debug.Stack()))
				handleException(c, errorPath, err)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		handleException(c, errorPath, c.Errors.Last().Err)
	}
}

func handleException(c *gin.Context, errorPath string, err error) {
	fields := []any{"error", err.Error(), "status", apperror.GetHTTPStatus(err)}

	if cause := errors.Unwrap(err); cause != nil {
		fields = append(fields, "cause", cause.Error())
	}
	if appErr, ok := apperror.AsAppError(err); ok {
		fields = append(fields, "code", appErr.Code)
		if stack, ok := appErr.Details["stack"].(string); ok {
			fields = append(fields, "stack", stack)
		}
	}
	fields = append(fields, "path", c.Request.URL.Path)

	logger.Error(c.Request.Context(), "unhandled exception", fields...)

	if c.Writer.Written() {
		return
	}

	target := errorPath
	if rid := c.GetString(ContextKeyRequestID); rid != "" {
		target += "?requestId=" + url.QueryEscape(rid)
	}
	c.Abort()
	c.Redirect(http.StatusFound, target)
}
