package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Teamiha/vacation-pay-calculator/controllers"
)

// SetupRoutes registers the application routes.
func SetupRoutes(router *gin.Engine, vacationController *controllers.VacationController, holidayController *controllers.HolidayController) {
	router.GET("/", vacationController.Index)
	router.GET("/calculate", vacationController.Calculate)

	holidays := router.Group("/holidays")
	{
		holidays.GET("", holidayController.GetHolidays)
		holidays.GET("/check", holidayController.CheckHoliday)
	}
}
