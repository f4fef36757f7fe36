package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Teamiha/vacation-pay-calculator/dto"
	"github.com/Teamiha/vacation-pay-calculator/models"
	"github.com/Teamiha/vacation-pay-calculator/response"
)

// HolidayController exposes read-only views of the fixed holiday calendar.
type HolidayController struct {
	calendar *models.HolidayCalendar
}

// NewHolidayController creates the controller.
func NewHolidayController(calendar *models.HolidayCalendar) *HolidayController {
	return &HolidayController{calendar: calendar}
}

// GetHolidays lists all fixed holidays
// @Summary List fixed holidays
// @Description Returns the full set of fixed non-working holidays. The dates recur on the same month and day every year.
// @Tags holidays
// @Produce json
// @Success 200 {object} response.Response{data=dto.HolidayListResponse}
// @Router /holidays [get]
func (hc *HolidayController) GetHolidays(c *gin.Context) {
	fixed := hc.calendar.FixedHolidays()

	holidays := make([]dto.HolidayResponse, 0, len(fixed))
	for _, holiday := range fixed {
		holidays = append(holidays, dto.HolidayResponse{
			Month: int(holiday.Month),
			Day:   holiday.Day,
			Name:  holiday.Name,
		})
	}

	response.Success(c, dto.HolidayListResponse{
		Holidays: holidays,
		Total:    len(holidays),
	})
}

// CheckHoliday reports whether a date is a fixed holiday
// @Summary Check a date against the holiday calendar
// @Description Reports whether the given date falls on a fixed non-working holiday.
// @Tags holidays
// @Produce json
// @Param date query string true "Date to check (YYYY-MM-DD)"
// @Success 200 {object} response.Response{data=dto.HolidayCheckResponse}
// @Failure 400 {object} response.Response
// @Router /holidays/check [get]
func (hc *HolidayController) CheckHoliday(c *gin.Context) {
	dateParam := c.Query("date")

	date, err := time.Parse(dateLayout, dateParam)
	if err != nil {
		response.ValidationError(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	response.Success(c, dto.HolidayCheckResponse{
		Date:      date.Format(dateLayout),
		IsHoliday: hc.calendar.IsHoliday(date),
	})
}
