package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jx3tools/jx3-tracker-backend/api"
	"github.com/jx3tools/jx3-tracker-backend/internal/equipment"
	"github.com/jx3tools/jx3-tracker-backend/internal/platform/config"
	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
	"github.com/jx3tools/jx3-tracker-backend/internal/platform/health"
	"github.com/jx3tools/jx3-tracker-backend/internal/platform/shutdown"
	"github.com/jx3tools/jx3-tracker-backend/internal/platform/startup"
	"github.com/jx3tools/jx3-tracker-backend/pkg/lifecycle"
	"github.com/jx3tools/jx3-tracker-backend/pkg/logger"
)

func main() {
	// .env 只在本地开发时存在，缺失不算错误
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	health.InitializeRunID()

	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 启动后先做一次健康检查，再交给后台协程持续巡检
	health.PerformCheck()

	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	healthHandle, err := gracefulMgr.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(fmt.Sprintf("注册健康检查服务失败: %v", err))
	}
	health.StartRedisHealthCheck(healthHandle)

	if cfg.Equipment.SyncEnabled {
		syncHandle, err := gracefulMgr.NewServiceHandle("equipment-sync")
		if err != nil {
			panic(fmt.Sprintf("注册装备同步服务失败: %v", err))
		}
		equipment.StartSyncScheduler(syncHandle)
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		logger.Info("服务器已准备就绪，开始监听 %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("服务器启动失败: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
