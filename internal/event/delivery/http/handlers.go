package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"calendar-schedule/pkg/ics"
	"calendar-schedule/pkg/response"
)

// List godoc
// @Summary     List events of a day
// @Description Returns the events on the given date ordered by time. A malformed date yields an empty list.
// @Tags        Events
// @Produce     json
// @Param       date query string true "Day (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     502 {object} response.Resp "Event store unavailable"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create an event
// @Description Stores a timed event. The title is trimmed and must not be empty.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     502 {object} response.Resp "Event store unavailable"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// Remove godoc
// @Summary     Delete an event
// @Description Deletes an event by id. Unknown ids are not an error; removed reports whether anything was deleted.
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} removeResp
// @Failure     502 {object} response.Resp "Event store unavailable"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Remove(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, removeResp{Removed: output.Removed})
}

// Stats godoc
// @Summary     Event counts per day
// @Description Returns date to event count for every day of the month that has events.
// @Tags        Events
// @Produce     json
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} statsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Event store unavailable"
// @Router      /api/v1/events/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.StatsByMonth(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.StatsByMonth: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Clear godoc
// @Summary     Delete all events
// @Tags        Events
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     502 {object} response.Resp "Event store unavailable"
// @Router      /api/v1/events [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Calendar godoc
// @Summary     Month view
// @Description Returns the 6x7 grid of a month with per-day event counts and the schedule of the selected day.
// @Tags        Calendar
// @Produce     json
// @Param       month    query string false "Displayed month (YYYY-MM), defaults to the current month"
// @Param       selected query string false "Selected day (YYYY-MM-DD), defaults to today"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Event store unavailable"
// @Router      /api/v1/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.calendar.Load(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "calendar.Load: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCalendarResp(view, input.Today))
}

// ExportICS godoc
// @Summary     Export a month as iCalendar
// @Tags        Calendar
// @Produce     text/calendar
// @Param       month query string true "Month (YYYY-MM)"
// @Success     200 {string} string "VCALENDAR"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Event store unavailable"
// @Router      /api/v1/events/export.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.calendar.Export(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "calendar.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	body, err := ics.Encode(toICSEvents(output.Events), ics.Options{
		Name: fmt.Sprintf("%s %d", input.Month, input.Year),
		Now:  h.now(),
	})
	if err != nil {
		h.l.Errorf(ctx, "ics.Encode: %v", err)
		response.InternalError(c, err)
		return
	}

	filename := fmt.Sprintf("events-%04d-%02d.ics", input.Year, int(input.Month))
	response.Attachment(c, ics.ContentType, filename, []byte(body))
}
