package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest 忘记密码请求
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginResult 登录成功结果
// Token 同时写入 auth_token Cookie（7 天），供客户端与服务端渲染复用
type LoginResult struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
