package dto

// CalculateVacationPayQuery binds the query parameters of GET /calculate.
// Either vacationDays or both startDate and endDate must be provided; the
// mutual exclusion itself is enforced by the calculation service.
type CalculateVacationPayQuery struct {
	AverageSalary string `form:"averageSalary" binding:"required,decimalgt0"`
	VacationDays  *int   `form:"vacationDays" binding:"omitempty,gt=0"`
	StartDate     string `form:"startDate" binding:"omitempty"`
	EndDate       string `form:"endDate" binding:"omitempty"`
}

// VacationPayResponse is the calculation result returned to the caller.
// VacationPay always carries exactly two fractional digits.
type VacationPayResponse struct {
	VacationPay        string `json:"vacationPay" example:"95563.16"`
	PayableDays        int    `json:"payableDays" example:"28"`
	CalculationDetails string `json:"calculationDetails" example:"Based on 28 vacation days"`
}
