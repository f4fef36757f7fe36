package config

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the application settings read from the environment.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string
}

// LoadConfig reads settings from a .env file if present, falling back to
// environment variables and defaults.
func LoadConfig() *Config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", gin.ReleaseMode),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// InitLogger builds the application logger at the configured level.
func InitLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}

// InitApp loads the configuration, initializes the logger and creates the
// router with its middleware and custom validators.
func InitApp() (*gin.Engine, *Config, *zap.Logger, error) {
	cfg := LoadConfig()

	logger, err := InitLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := RegisterValidators(); err != nil {
		return nil, nil, nil, err
	}

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	return router, cfg, logger, nil
}

// InitSwagger mounts the Swagger UI.
func InitSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// getEnv returns the value of the environment variable or the fallback.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
