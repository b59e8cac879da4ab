// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"woodshop/internal/core/apperror"
	appctx "woodshop/internal/core/context"
	"woodshop/internal/infrastructure/http/v1/dto"
	"woodshop/pkg/logger"
)

// Recovery turns a panic in a handler into a 500 response.
// It sits outside ErrorHandler, so it writes the body itself; the client
// only sees the request id to quote, never the panic value.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := c.Request.Context()
			route := c.FullPath()
			if route == "" {
				route = c.Request.URL.Path
			}

			appErr := apperror.NewInternal(fmt.Errorf("%s %s: panic: %v", c.Request.Method, route, rec))
			if id := appctx.GetRequestID(ctx); id != "" {
				appErr = appErr.WithDetail("request_id", id)
			}

			logger.Error(ctx, "handler panicked",
				"method", c.Request.Method,
				"route", route,
				"cause", appErr.Err,
				"stack", string(debug.Stack()),
			)

			_ = c.Error(appErr)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, dto.ErrorResponse{
				Code:    appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
			})
		}()
		c.Next()
	}
}
