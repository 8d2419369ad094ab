package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"task-service/internal/application/services"
	"task-service/internal/config"
	"task-service/internal/delivery/handler"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/db/postgres"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	redisService := infrastructure.NewRedisService()
	defer redisService.Close()

	authService := services.NewAuthService(userRepo, jwtService, redisService)
	taskService := services.NewTaskService(taskRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	h := handler.NewHandler(authService, taskService)
	h.RegisterRoutes(e, handler.NewAuthMiddleware(jwtService, userRepo))

	log.Printf("server listening on :%s", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
