package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Teamiha/vacation-pay-calculator/dto"
	"github.com/Teamiha/vacation-pay-calculator/response"
	"github.com/Teamiha/vacation-pay-calculator/services"
)

const dateLayout = "2006-01-02"

// VacationController handles the vacation pay calculation endpoint.
type VacationController struct {
	service *services.VacationPayService
	logger  *zap.Logger
}

// NewVacationController creates the controller.
func NewVacationController(service *services.VacationPayService, logger *zap.Logger) *VacationController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VacationController{service: service, logger: logger}
}

// Index renders the calculation form.
func (vc *VacationController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Calculate computes vacation pay from query parameters
// @Summary Calculate vacation pay
// @Description Calculates vacation pay from the average monthly salary and either an explicit number of vacation days or a calendar date range. Fixed non-working holidays inside the range are excluded from the payable days.
// @Tags vacation
// @Produce json
// @Param averageSalary query string true "Average monthly salary for the last 12 months (decimal, greater than 0)"
// @Param vacationDays query int false "Number of vacation days (mutually exclusive with the date range)"
// @Param startDate query string false "Vacation start date (YYYY-MM-DD)"
// @Param endDate query string false "Vacation end date (YYYY-MM-DD)"
// @Success 200 {object} response.Response{data=dto.VacationPayResponse}
// @Failure 400 {object} response.Response
// @Router /calculate [get]
func (vc *VacationController) Calculate(c *gin.Context) {
	var query dto.CalculateVacationPayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "Invalid query parameters: "+err.Error())
		return
	}

	averageSalary, err := decimal.NewFromString(query.AverageSalary)
	if err != nil {
		response.ValidationError(c, "Average salary must be a valid decimal number")
		return
	}

	var startDate, endDate *time.Time
	if query.StartDate != "" {
		parsed, err := time.Parse(dateLayout, query.StartDate)
		if err != nil {
			response.ValidationError(c, "Invalid startDate format, expected YYYY-MM-DD")
			return
		}
		startDate = &parsed
	}
	if query.EndDate != "" {
		parsed, err := time.Parse(dateLayout, query.EndDate)
		if err != nil {
			response.ValidationError(c, "Invalid endDate format, expected YYYY-MM-DD")
			return
		}
		endDate = &parsed
	}

	vc.logger.Info("Received vacation pay calculation request",
		zap.String("averageSalary", query.AverageSalary),
		zap.Intp("vacationDays", query.VacationDays),
		zap.String("startDate", query.StartDate),
		zap.String("endDate", query.EndDate))

	request, err := services.NewPayRequest(averageSalary, query.VacationDays, startDate, endDate)
	if err != nil {
		response.Error(c, 0, err.Error())
		return
	}

	result, err := vc.service.CalculatePay(request)
	if err != nil {
		if errors.Is(err, services.ErrModeConflict) || errors.Is(err, services.ErrInvalidDateOrder) {
			response.Error(c, 0, err.Error())
			return
		}
		response.ServerError(c)
		return
	}

	vc.logger.Info("Calculated vacation pay",
		zap.String("vacationPay", result.VacationPay.StringFixed(2)),
		zap.Int("payableDays", result.PayableDays))

	response.Success(c, dto.VacationPayResponse{
		VacationPay:        result.VacationPay.StringFixed(2),
		PayableDays:        result.PayableDays,
		CalculationDetails: result.CalculationDetails,
	})
}
