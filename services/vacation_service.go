package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Teamiha/vacation-pay-calculator/models"
)

// averageMonthlyDays is the official average number of calendar days in a
// month per the Russian Ministry of Labor, used to derive average daily
// earnings from the monthly salary.
var averageMonthlyDays = decimal.RequireFromString("29.3")

// monetaryScale is the number of fractional digits kept in monetary values.
// Rounding is half away from zero, applied exactly twice: once on the
// average daily earnings and once on the final amount.
const monetaryScale = 2

var (
	// ErrModeConflict is returned when the request selects neither or both
	// of the mutually exclusive calculation modes.
	ErrModeConflict = errors.New("Either vacationDays or both startDate and endDate must be provided")

	// ErrInvalidDateOrder is returned when the start date is after the end date.
	ErrInvalidDateOrder = errors.New("Start date must be before or equal to end date")
)

// PayBasis selects how payable days are derived. Exactly one concrete
// variant backs every valid request, which makes the "both modes" and
// "neither mode" states unrepresentable past the constructor.
type PayBasis interface {
	payBasis()
}

// DayCountBasis calculates pay from an explicit number of vacation days.
type DayCountBasis struct {
	Days int
}

func (DayCountBasis) payBasis() {}

// DateRangeBasis calculates pay from an inclusive calendar date range,
// excluding fixed holidays that fall inside it.
type DateRangeBasis struct {
	Start time.Time
	End   time.Time
}

func (DateRangeBasis) payBasis() {}

// PayRequest is a validated vacation pay calculation request.
type PayRequest struct {
	AverageSalary decimal.Decimal
	Basis         PayBasis
}

// PayResult holds the outcome of a vacation pay calculation.
type PayResult struct {
	VacationPay        decimal.Decimal
	PayableDays        int
	CalculationDetails string
}

// NewPayRequest builds a PayRequest from optional raw inputs, enforcing
// that exactly one of vacationDays or the startDate/endDate pair is
// provided and that the dates are ordered.
func NewPayRequest(averageSalary decimal.Decimal, vacationDays *int, startDate, endDate *time.Time) (PayRequest, error) {
	hasDays := vacationDays != nil && *vacationDays > 0
	hasDates := startDate != nil && endDate != nil

	if hasDays == hasDates {
		return PayRequest{}, ErrModeConflict
	}

	if hasDays {
		return PayRequest{
			AverageSalary: averageSalary,
			Basis:         DayCountBasis{Days: *vacationDays},
		}, nil
	}

	if midnightUTC(*startDate).After(midnightUTC(*endDate)) {
		return PayRequest{}, ErrInvalidDateOrder
	}

	return PayRequest{
		AverageSalary: averageSalary,
		Basis:         DateRangeBasis{Start: *startDate, End: *endDate},
	}, nil
}

// VacationPayService calculates vacation pay under the statutory formula:
// average daily earnings are the monthly salary divided by 29.3, and the
// pay is daily earnings multiplied by the payable vacation days.
type VacationPayService struct {
	calendar *models.HolidayCalendar
	logger   *zap.Logger
}

// NewVacationPayService creates the service with its holiday calendar.
func NewVacationPayService(calendar *models.HolidayCalendar, logger *zap.Logger) *VacationPayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VacationPayService{calendar: calendar, logger: logger}
}

// CalculatePay validates the request and computes the vacation pay amount,
// the payable day count and a human-readable calculation summary.
func (s *VacationPayService) CalculatePay(request PayRequest) (PayResult, error) {
	if err := validateRequest(request); err != nil {
		return PayResult{}, err
	}

	averageDailyEarnings := request.AverageSalary.DivRound(averageMonthlyDays, monetaryScale)

	payableDays, err := s.calculatePayableDays(request.Basis)
	if err != nil {
		return PayResult{}, err
	}

	vacationPay := averageDailyEarnings.
		Mul(decimal.NewFromInt(int64(payableDays))).
		Round(monetaryScale)

	details, err := s.buildCalculationDetails(request.Basis)
	if err != nil {
		return PayResult{}, err
	}

	s.logger.Debug("Calculated vacation pay",
		zap.String("vacationPay", vacationPay.StringFixed(monetaryScale)),
		zap.Int("payableDays", payableDays))

	return PayResult{
		VacationPay:        vacationPay,
		PayableDays:        payableDays,
		CalculationDetails: details,
	}, nil
}

// validateRequest re-checks the invariants the constructor enforces, for
// callers that build a PayRequest directly.
func validateRequest(request PayRequest) error {
	switch basis := request.Basis.(type) {
	case DayCountBasis:
		if basis.Days <= 0 {
			return ErrModeConflict
		}
	case DateRangeBasis:
		if midnightUTC(basis.Start).After(midnightUTC(basis.End)) {
			return ErrInvalidDateOrder
		}
	default:
		return ErrModeConflict
	}
	return nil
}

// calculatePayableDays derives the number of payable vacation days: either
// the explicit day count, or the inclusive calendar days in the range minus
// the fixed holidays falling inside it.
func (s *VacationPayService) calculatePayableDays(basis PayBasis) (int, error) {
	switch b := basis.(type) {
	case DayCountBasis:
		return b.Days, nil
	case DateRangeBasis:
		start, end := midnightUTC(b.Start), midnightUTC(b.End)
		totalDays := totalCalendarDays(start, end)
		holidays, err := s.calendar.CountHolidaysBetween(start, end)
		if err != nil {
			return 0, err
		}
		return totalDays - holidays, nil
	default:
		return 0, ErrModeConflict
	}
}

// buildCalculationDetails renders the calculation summary shown to the caller.
func (s *VacationPayService) buildCalculationDetails(basis PayBasis) (string, error) {
	switch b := basis.(type) {
	case DayCountBasis:
		return fmt.Sprintf("Based on %d vacation days", b.Days), nil
	case DateRangeBasis:
		startDay, endDay := midnightUTC(b.Start), midnightUTC(b.End)
		totalDays := totalCalendarDays(startDay, endDay)
		holidays, err := s.calendar.CountHolidaysBetween(startDay, endDay)
		if err != nil {
			return "", err
		}
		start := startDay.Format("2006-01-02")
		end := endDay.Format("2006-01-02")
		if holidays > 0 {
			return fmt.Sprintf("Based on provided dates (%s to %s), %d calendar days excluding %d holiday(s)",
				start, end, totalDays, holidays), nil
		}
		return fmt.Sprintf("Based on provided dates (%s to %s), %d calendar days",
			start, end, totalDays), nil
	default:
		return "", ErrModeConflict
	}
}

// midnightUTC drops the time of day and zone, keeping the caller's civil date.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// totalCalendarDays counts the days between two dates, inclusive of both ends.
func totalCalendarDays(start, end time.Time) int {
	start, end = midnightUTC(start), midnightUTC(end)
	return int(end.Sub(start).Hours()/24) + 1
}
