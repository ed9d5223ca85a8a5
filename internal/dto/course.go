package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Title        string  `json:"title"         binding:"required,max=200"`
	Description  string  `json:"description"   binding:"required"`
	Price        float64 `json:"price"         binding:"min=0"`
	Duration     string  `json:"duration"      binding:"required"`
	Level        string  `json:"level"         binding:"required"`
	ImageURL     string  `json:"image_url"`
	InstructorID string  `json:"instructor_id" binding:"required,uuid"`
}

// CourseResponse 课程响应
type CourseResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Duration       string  `json:"duration"`
	Level          string  `json:"level"`
	ImageURL       string  `json:"image_url"`
	InstructorID   string  `json:"instructor_id,omitempty"`
	InstructorName string  `json:"instructor_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
