package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/tsawler/renumber/internal/response"
)

// Health response constants.
const (
	HealthVersion = "1.0.0"
	ServiceName   = "renumber"
)

// healthCheck handles health check requests
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready as soon as the routes are mapped; there are no
// backing services to wait for.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
