package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.POST("", h.Create)
		events.DELETE("", h.Clear)
		events.GET("/stats", h.Stats)
		events.GET("/export.ics", h.ExportICS)
		events.DELETE("/:id", h.Remove)
	}

	rg.GET("/calendar", h.Calendar)
}
