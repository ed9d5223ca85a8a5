package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误响应结构
// 成功响应由各 Handler 按接口约定自行组装（{courses:[...]}、{success,token,user} 等），
// 错误响应统一为 {success:false, message}
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ── 成功响应 ──

// OK 200 成功响应，payload 原样输出
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created 201 创建成功
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Success: false, Message: message})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
// 基础设施错误细节只进日志，客户端统一收到通用提示
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "服务器内部错误")
}

// BadGateway 502（支付服务商调用失败）
func BadGateway(c *gin.Context, message string) {
	Error(c, http.StatusBadGateway, message)
}
