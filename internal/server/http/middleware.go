package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	scopeKey        = "scope"
	bearerPrefix    = "Bearer "
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.Error(ctx, "HTTP request", args...)
		case status >= 400:
			logger.Warn(ctx, "HTTP request", args...)
		default:
			logger.Info(ctx, "HTTP request", args...)
		}
	}
}

func recovery(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		logger.Error(c.Request.Context(), "panic recovered", "request_id", c.GetString(requestIDKey), "panic", rec)
		abortWithError(c, common.ErrorInternal)
	})
}

func authRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) || strings.TrimPrefix(header, bearerPrefix) == "" {
			abortWithStatus(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}

		scope, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "token expired"
			}
			abortWithStatus(c, http.StatusUnauthorized, "unauthorized", msg)
			return
		}

		c.Set(scopeKey, scope)
		c.Next()
	}
}

func adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := access.RequireAdmin(scopeOf(c)); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

// scopeOf returns the scope set by authRequired. Routes without it get the
// zero scope, which no resource resolves to.
func scopeOf(c *gin.Context) access.Scope {
	s, _ := c.Get(scopeKey)
	scope, _ := s.(access.Scope)
	return scope
}
