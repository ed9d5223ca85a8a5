package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"learnhub/backend/config"
	"learnhub/backend/internal/api/middleware"
	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/response"
)

const authCookieName = "auth_token"

// AuthHandler 认证相关接口
type AuthHandler struct {
	cfg *config.Config
	svc service.AuthService
}

func NewAuthHandler(cfg *config.Config, svc service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, svc: svc}
}

// Login 邮箱密码登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "邮箱和密码不能为空")
		return
	}

	result, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	// Cookie 与 Token 同寿命；前端需要读取，故不设 HttpOnly
	h.setAuthCookie(c, result.Token, int(h.cfg.Auth.TokenTTL.Seconds()))

	response.OK(c, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

// Logout 登出：清除 Cookie 并将当前 Token 加入黑名单
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("token_jti")
	if jti != "" {
		if err := h.svc.Logout(c.Request.Context(), jti, middleware.TokenExp(c)); err != nil {
			response.InternalError(c)
			return
		}
	}

	h.setAuthCookie(c, "", -1)
	response.OK(c, gin.H{"success": true, "message": "已退出登录"})
}

// Me 返回当前登录用户信息
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.svc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(c, "登录状态已失效")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"success": true, "user": user})
}

// ForgotPassword 发起密码重置
// 无论邮箱是否存在都返回同样的成功响应，防止账号枚举
// POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "邮箱格式无效")
		return
	}

	if err := h.svc.CreateResetToken(c.Request.Context(), req.Email); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "如果该邮箱已注册，重置链接将发送至邮箱",
	})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	cookie := h.cfg.Auth.Cookie
	c.SetSameSite(parseSameSite(cookie.SameSite))
	c.SetCookie(authCookieName, token, maxAge, "/", cookie.Domain, cookie.Secure, false)
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
