package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"pcapi/internal/handler/httperr"
	"pcapi/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler answers requests whose handler recorded errors without
// writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if len(c.Errors) == 0 && c.Writer.Status() != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}

		slog.Error("request ended without a response",
			"route", c.FullPath(), "request_id", GetRequestID(c), "errors", c.Errors.String())
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
	}
}

func lastPublicResponse(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery must be the outermost middleware. A panic mid-booking rolls
// the transaction back through the unit of work before reaching here.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			slog.Error("recovered from panic",
				"panic", r, "route", c.FullPath(), "request_id", GetRequestID(c), "stack", string(debug.Stack()))
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.Newf("panic: %v", r), "Internal server error", nil)
		}()
		c.Next()
	}
}
