package main

import (
	"fmt"
	"log"

	"zynta_referral/internal/api"
	"zynta_referral/internal/repository"
	"zynta_referral/internal/service"
	"zynta_referral/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Referral)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}

	hub := service.NewNotificationHub(service.DefaultSubscriberBuffer)
	userService := service.NewUserService(repo, hub)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(userService, hub, api.RouterConfig{
		IndexFile:    cfg.Static.IndexFile,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server",
		zap.String("addr", addr),
		zap.Int("users", repo.Count()),
		zap.Int("reward_points", repo.RewardPoints()))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
