package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/renumber/internal/response"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.requestID())
	srv.gin.Use(srv.accessLog())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv *HTTPServer) registerDomainRoutes() {
	v1 := srv.gin.Group("/v1")
	if srv.limiter != nil {
		v1.Use(srv.rateLimit())
	}
	v1.POST("/renumber", srv.renumber)
}

// requestID tags every request with a UUID, reusing the client's if it
// sent a valid one.
func (srv *HTTPServer) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (srv *HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			srv.l.Error("request failed", fields...)
			return
		}
		srv.l.Debug("request", fields...)
	}
}

func (srv *HTTPServer) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := srv.limiter.Allow(c.ClientIP()); err != nil {
			srv.l.Warn("rate limited",
				zap.String("request_id", c.GetString("request_id")),
				zap.Error(err),
			)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
