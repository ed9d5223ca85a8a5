package dto

// ── 用户模块 DTO ──

// UserResponse 用户信息响应（脱敏，不含密码哈希）
type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	Specialization string `json:"specialization,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// CreateUserRequest 创建用户请求
// Role 缺省为 student
type CreateUserRequest struct {
	Name     string `json:"name"      binding:"required,min=2,max=100"`
	Email    string `json:"email"     binding:"required,email"`
	Role     string `json:"role"      binding:"omitempty,oneof=student instructor admin"`
	ImageURL string `json:"image_url"`
}

// CreateUserResponse 创建用户响应
// TempPassword 仅在创建时返回一次，要求用户首次登录后修改
type CreateUserResponse struct {
	User         UserResponse `json:"user"`
	TempPassword string       `json:"temp_password"`
}

// InstructorResponse 可预约讲师的公开投影
type InstructorResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Available      bool   `json:"available"`
}
