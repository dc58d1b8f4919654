package middleware

import (
	"net/http"
	"runtime/debug"

	"guest-conversion/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler writes the last public error queued by httperr.AbortWithError
// when the handler chain left the response unwritten.
func (l *Logger) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if last := c.Errors.Last(); last != nil {
			l.logger.Error("応答に変換されないエラーが残っています",
				"request_id", GetRequestID(c), "path", c.FullPath(), "error", last.Err)
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		writeInternalError(c)
	}
}

func lastPublicResponse(list []*gin.Error) (httperr.Response, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := list[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// Recovery must be the outermost middleware.
func (l *Logger) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				l.logger.Error("パニックから復帰しました",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", r,
					"stack", string(debug.Stack()))
				writeInternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func writeInternalError(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = internalErrorMessage
	c.JSON(resp.Status, resp)
}
