package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"learnhub/backend/config"
	"learnhub/backend/internal/api/handler"
	"learnhub/backend/internal/api/router"
	"learnhub/backend/internal/repository"
	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/database"
	"learnhub/backend/pkg/jwt"
	"learnhub/backend/pkg/logger"
	"learnhub/backend/pkg/redis"
)

func main() {
	// .env 仅用于本地开发，不存在时忽略
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("LEARNHUB_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	// 数据层：未配置数据库时以演示模式启动（空结果数据层）
	var repo *repository.Repository
	if cfg.Database.Configured() {
		db, err := database.NewDB(&cfg.Database, log)
		if err != nil {
			log.Fatal("连接数据库失败", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("获取底层连接失败", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, log); err != nil {
			log.Fatal("执行数据库迁移失败", zap.Error(err))
		}
		repo = repository.NewRepository(db)
	} else {
		log.Warn("未配置数据库，以演示模式启动")
		repo = repository.NewNull(log)
	}

	// Redis 可选：不可用时黑名单与限流自动退化为直通
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis 不可用，Token 黑名单与限流已禁用", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, log)
	h := handler.NewHandler(cfg, svc)
	engine := router.Setup(cfg, h, jwtMgr, rdb, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("收到退出信号，开始优雅关闭")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("优雅关闭失败", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	log.Info("服务已退出")
}
