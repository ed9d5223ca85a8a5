package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// 迁移脚本随二进制一起打包，部署时无需携带 SQL 文件
//
//go:embed migrations/*.sql
var schemaFS embed.FS

// RunMigrations 启动时把 schema 推进到最新版本
// 已是最新（ErrNoChange）不视为错误；演示模式下不连库，不会走到这里
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(schemaFS, "migrations")
	if err != nil {
		return fmt.Errorf("读取内嵌迁移脚本失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("构建 postgres 迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("组装迁移实例失败: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("应用迁移失败: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		// dirty 说明上次迁移中断，需要人工修复 schema_migrations 后重试
		logger.Warn("schema 处于 dirty 状态", zap.Uint("version", version))
		return nil
	}
	logger.Info("schema 已是最新", zap.Uint("version", version))

	return nil
}
