package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"learnhub/backend/pkg/redis"
	"learnhub/backend/pkg/response"
)

// RateLimit 基于 Redis 的固定窗口限流
// Redis 未配置时直接放行；限流本身出错也放行，不能因限流组件拖垮业务
func RateLimit(rdb *redis.Client, logger *zap.Logger, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("限流检查失败", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}
		c.Next()
	}
}
