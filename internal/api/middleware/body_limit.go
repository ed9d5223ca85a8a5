package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/backend/pkg/response"
)

// BodyLimit 限制请求体大小，防止超大请求拖垮服务
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, "请求体过大")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
