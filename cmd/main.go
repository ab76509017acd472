package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/crisis_assessment_engine/internal/config"
	"github.com/shenikar/crisis_assessment_engine/internal/geo"
	v1 "github.com/shenikar/crisis_assessment_engine/internal/handler/http/v1"
	"github.com/shenikar/crisis_assessment_engine/internal/repository"
	"github.com/shenikar/crisis_assessment_engine/internal/service"
	"github.com/shenikar/crisis_assessment_engine/pkg/logger"
	redisclient "github.com/shenikar/crisis_assessment_engine/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crisis_assessment_engine/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crisis Assessment Engine API
// @version 1.0
// @description Crisis assessment and risk scoring action service for an external dialogue engine.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация шлюза геокодирования
	geoClient := geo.NewClient(cfg.NominatimBaseURL, cfg.NominatimEmail, cfg.NominatimTimeout, cfg.NominatimPause, log)

	// Инициализация репозиториев
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.SessionTTL)

	// Инициализация сервисов
	sessionService := service.NewSessionService(sessionRepo, geoClient, geoClient, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(sessionService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
