package dto

// HolidayResponse describes one fixed non-working holiday.
type HolidayResponse struct {
	Month int    `json:"month" example:"5"`
	Day   int    `json:"day" example:"9"`
	Name  string `json:"name" example:"Victory Day"`
}

// HolidayListResponse is the full fixed holiday set.
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
	Total    int               `json:"total" example:"14"`
}

// HolidayCheckResponse answers whether a specific date is a holiday.
type HolidayCheckResponse struct {
	Date      string `json:"date" example:"2024-05-09"`
	IsHoliday bool   `json:"isHoliday" example:"true"`
}
