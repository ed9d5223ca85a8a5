package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEARNHUB_AUTH_JWT_SECRET", "a-test-secret-at-least-16")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("默认端口应为 8080，实际 %d", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != 168*time.Hour {
		t.Errorf("Token 有效期应为 7 天，实际 %v", cfg.Auth.TokenTTL)
	}
	if !cfg.Feature.CourseListDegrade {
		t.Error("课程列表降级开关默认应开启")
	}
	// db.host 缺省为空 = 演示模式
	if cfg.Database.Configured() {
		t.Error("未配置 db.host 时应为演示模式")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LEARNHUB_AUTH_JWT_SECRET", "a-test-secret-at-least-16")
	t.Setenv("LEARNHUB_SERVER_PORT", "9090")
	t.Setenv("LEARNHUB_DB_HOST", "db.internal")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("环境变量应覆盖端口，实际 %d", cfg.Server.Port)
	}
	if !cfg.Database.Configured() {
		t.Error("设置 db.host 后应退出演示模式")
	}
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Auth:   AuthConfig{JWTSecret: "short"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("过短的 jwt_secret 应被拒绝")
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "pw", Name: "learnhub", SSLMode: "disable", Timezone: "UTC",
	}
	dsn := cfg.DSN()
	for _, part := range []string{"host=localhost", "dbname=learnhub", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN 缺少 %q: %s", part, dsn)
		}
	}
}
