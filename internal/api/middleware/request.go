// Package middleware provides HTTP middleware for the Gin router.
//
// Go Learning Note — Middleware Pattern (Gin):
// In Gin, middleware is any function with the signature `gin.HandlerFunc`, which
// is `func(*gin.Context)`. Middleware functions form a chain: each one runs,
// optionally calls c.Next() to pass control to the next handler, and can call
// c.Abort() to stop the chain.
//
// The chain here is: recovery, request id, request logging, CORS, rate limit.
// Request id runs early so every later log line can carry it.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"wordgrid/internal/platform/logger"
	"wordgrid/pkg/utils"
)

// RequestIDHeader is read from the request and echoed on the response.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request id.
//
// Go Learning Note — Context Values:
// Gin's c.Set/c.Get stores request-scoped values in the *gin.Context. The id
// is also put on the request's context.Context under logger.RequestIDKey so
// code below the handler layer, which only sees a context.Context, can log it.
const RequestIDKey = "request_id"

// RequestID assigns every request an id. A well-formed UUID supplied by the
// client is kept; anything else is replaced.
//
// Go Learning Note — Returning Functions (Closures):
// RequestID() returns a gin.HandlerFunc. The outer function is where
// configuration would be captured; the inner closure runs per request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := utils.RequestID(c.GetHeader(RequestIDHeader))

		c.Set(RequestIDKey, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "" if the middleware did
// not run.
//
// Go Learning Note — Type Assertion:
// c.Get() returns (any, bool). The two-value form `v, ok := x.(string)`
// yields ok=false instead of panicking when the value is missing or of
// another type.
func GetRequestID(c *gin.Context) string {
	v, exists := c.Get(RequestIDKey)
	if !exists {
		return ""
	}
	id, _ := v.(string)
	return id
}

// RequestLogger logs every request with its status and latency. Requests
// that ended in a 5xx also get an error line carrying the last gin error.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		reqLog := log.WithContext(c.Request.Context())

		reqLog.HTTPRequest(c.Request.Method, path, status, float64(latency.Microseconds())/1000, c.ClientIP())
		if status >= 500 {
			if last := c.Errors.Last(); last != nil {
				reqLog.HTTPError(c.Request.Method, path, status, last.Err, c.ClientIP())
			}
		}
	}
}
