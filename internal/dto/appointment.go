package dto

// ── 预约模块 DTO ──

// BookAppointmentRequest 预约讲师请求
// 学生身份取认证上下文，不从请求体读取
type BookAppointmentRequest struct {
	InstructorID string `json:"instructorId" binding:"required,uuid"`
	Date         string `json:"date"         binding:"required"` // YYYY-MM-DD
	Time         string `json:"time"         binding:"required"` // HH:MM
	Topic        string `json:"topic"`
	Notes        string `json:"notes"`
	Type         string `json:"type"`
}
