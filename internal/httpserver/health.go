package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-schedule/internal/event/repository"
	"calendar-schedule/pkg/datemath"
	pkgErrors "calendar-schedule/pkg/errors"
	"calendar-schedule/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-schedule"

	readyProbeTimeout = 2 * time.Second
)

var errStoreNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "event store not ready")

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// readyCheck answers 200 once the event store can serve a read.
// @Summary Readiness Check
// @Description Check that the event store answers a list query
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Event store not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyProbeTimeout)
	defer cancel()

	today := datemath.FormatDate(time.Now())
	if _, err := srv.eventRepo.ListEvents(ctx, repository.ListEventsOptions{Date: today}); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		response.Error(c, errStoreNotReady, nil)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive"})
}
