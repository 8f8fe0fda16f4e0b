package http

import (
	"github.com/gin-gonic/gin"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/pkg/datemath"
)

// processListReq binds the list events query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processCreateReq binds the create event body. Field rules live in the use case.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processStatsReq binds the year/month query parameters.
func (h *handler) processStatsReq(c *gin.Context) (statsReq, error) {
	var req statsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processCalendarReq turns month/selected query parameters into a view state
// anchored on today.
func (h *handler) processCalendarReq(c *gin.Context) (calendar.LoadInput, error) {
	var req calendarReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return calendar.LoadInput{}, bindError(err)
	}

	today := h.now()
	state := calendar.NewViewState(today)
	if req.Month != "" {
		year, month, err := datemath.ParseMonth(req.Month)
		if err != nil {
			return calendar.LoadInput{}, errInvalidMonth
		}
		state = state.ShowMonth(year, month)
	}
	if req.Selected != "" {
		day, err := datemath.ParseDate(req.Selected, today.Location())
		if err != nil {
			return calendar.LoadInput{}, errInvalidSelected
		}
		state = state.Select(day)
	}

	return calendar.LoadInput{State: state, Today: today}, nil
}

// processExportReq binds the month to export.
func (h *handler) processExportReq(c *gin.Context) (calendar.ExportInput, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return calendar.ExportInput{}, errInvalidMonth
	}
	year, month, err := datemath.ParseMonth(req.Month)
	if err != nil {
		return calendar.ExportInput{}, errInvalidMonth
	}
	return calendar.ExportInput{Year: year, Month: month}, nil
}
