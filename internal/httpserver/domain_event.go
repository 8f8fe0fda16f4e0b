package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarUC "calendar-schedule/internal/calendar/usecase"
	eventHTTP "calendar-schedule/internal/event/delivery/http"
	eventUC "calendar-schedule/internal/event/usecase"
)

// setupEventDomain wires the event store and the calendar view onto api.
//
//  1. Repository comes from config (see repository/factory).
//  2. UseCases:    events, then the calendar view reading through them.
//  3. HTTP Handler and routes under /api/v1.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1-2. UseCases
	events := eventUC.New(srv.eventRepo, srv.l)
	cal := calendarUC.New(events, srv.weekStart, srv.l)

	// 3. HTTP Handler + routes: /api/v1/events, /api/v1/calendar
	h := eventHTTP.New(srv.l, events, cal)
	eventHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
