// Calendar HTTP handler.
//
// This file exposes the monthly view:
//   - GET /calendar?year=&month=
//
// Missing parameters default to the current date (the injected clock);
// month overflow is normalized before the range query, so month=0 renders
// the previous December and month=13 the next January. The response also
// carries today's agenda, which the monthly view displays alongside the
// grid.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/go-salon-backend/internal/domain"
	"github.com/salonsuite/go-salon-backend/internal/services"
	"github.com/salonsuite/go-salon-backend/internal/utils"
)

// CalendarResponse is the display-ready monthly view.
type CalendarResponse struct {
	Calendar  *services.MonthCalendar `json:"calendar"`
	MonthName string                  `json:"month_name"`
	Today     string                  `json:"today"`
	// TodayAppointments is today's agenda, shown next to the grid.
	TodayAppointments []domain.Appointment `json:"today_appointments"`
}

// MonthCalendar renders the month grid with per-day appointments and
// prev/next navigation.
func (h *Handlers) MonthCalendar(c *gin.Context) {
	now := h.now()
	year := utils.AtoiDefault(c.Query("year"), now.Year())
	month := utils.AtoiDefault(c.Query("month"), int(now.Month()))

	year, month = services.NormalizeYearMonth(year, month)
	first, last := services.MonthRange(year, month)

	appts, err := h.apptSvc.InRange(c.Request.Context(), first, last)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load appointments")
		return
	}

	cal, err := services.BuildMonthCalendar(year, month, appts)
	if err != nil {
		if errors.Is(err, services.ErrCalendarOutOfRange) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not build calendar")
		return
	}

	todays, err := h.apptSvc.Today(c.Request.Context(), now)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load today's appointments")
		return
	}

	ok(c, http.StatusOK, CalendarResponse{
		Calendar:          cal,
		MonthName:         services.MonthName(cal.Month),
		Today:             now.Format("2006-01-02"),
		TodayAppointments: todays,
	})
}
