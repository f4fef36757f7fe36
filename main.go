package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Teamiha/vacation-pay-calculator/config"
	"github.com/Teamiha/vacation-pay-calculator/controllers"
	_ "github.com/Teamiha/vacation-pay-calculator/docs"
	"github.com/Teamiha/vacation-pay-calculator/models"
	"github.com/Teamiha/vacation-pay-calculator/routes"
	"github.com/Teamiha/vacation-pay-calculator/services"
)

// @title Vacation Pay Calculator API
// @version 1.0
// @description REST API for calculating vacation pay under the Russian statutory formula (average daily earnings = monthly salary / 29.3).
// @BasePath /
func main() {
	// Initialize the application
	router, cfg, logger, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer logger.Sync()

	// Initialize the services
	holidayCalendar := models.NewHolidayCalendar()
	vacationService := services.NewVacationPayService(holidayCalendar, logger)

	vacationController := controllers.NewVacationController(vacationService, logger)
	holidayController := controllers.NewHolidayController(holidayCalendar)

	// Initialize Swagger
	config.InitSwagger(router)

	// Setup the application routes
	router.LoadHTMLGlob("templates/*")
	routes.SetupRoutes(router, vacationController, holidayController)

	// Ping endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Run the server
	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
