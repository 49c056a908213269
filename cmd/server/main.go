package main

import (
	"context"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/SlpAus/skillswap-connect-backend/api"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/config"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/database"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/health"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/logger"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/shutdown"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/startup"
	"github.com/SlpAus/skillswap-connect-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("加载配置失败: %v", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.Server.Mode)

	db, err := database.Open(cfg.Database.Sqlite, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	logger.Success("数据库连接成功！")

	stores, err := startup.InitializeApplication(context.Background(), db, cfg.Seed.Enabled)
	if err != nil {
		logger.Error("应用初始化失败，无法启动: %v", err)
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger())
	r.Use(cors.New(corsConfig(cfg.Server.Cors)))

	api.SetupRoutes(r, cfg.Server.BasePath, stores, health.NewChecker(db))

	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	manager := lifecycle.NewManager()
	err = manager.Go("http-server", func(h *lifecycle.Handle) {
		logger.Success("SkillSwap Connect 后端已准备就绪，开始监听 %s", cfg.Server.Address)
		if err := shutdown.Serve(h, server); err != nil {
			logger.Error("服务器启动失败: %v", err)
			os.Exit(1)
		}
	})
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	shutdown.NewCoordinator(db, manager).ListenForSignalsAndShutdown()
}

func corsConfig(cfg config.CorsConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}
