package routes

import (
	"fmt"
	"net/http"
	"time"

	"ecotech/pkg"
	"ecotech/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

func setMiddlewares(router *gin.Engine, log logger.Logger) {
	router.Use(requestID())
	router.Use(accessLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		l := log.WithContext(c.Request.Context())
		l.Error().Str("panic", fmt.Sprintf("%v", recovered)).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}

// requestID propagates or mints a correlation id and stores it where the
// logger looks for it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func accessLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l := log.WithContext(c.Request.Context())
		status := c.Writer.Status()
		event := l.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = l.Error()
		case status >= http.StatusBadRequest:
			event = l.Warn()
		}
		event.
			Str("component", "http").
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Send()
	}
}
