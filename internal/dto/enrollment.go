package dto

// ── 选课模块 DTO ──

// NextLesson "继续学习"指向的下一个章节
// 取 order_index 大于已完成最大序号的最小章节；全部学完时整体缺省
type NextLesson struct {
	ModuleID   string `json:"module_id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
}

// EnrollmentResponse 学生选课响应（含课程与讲师信息）
type EnrollmentResponse struct {
	ID               string      `json:"id"`
	CourseID         string      `json:"course_id"`
	CourseTitle      string      `json:"course_title"`
	CourseImageURL   string      `json:"course_image_url,omitempty"`
	Level            string      `json:"level,omitempty"`
	InstructorName   string      `json:"instructor_name,omitempty"`
	LastAccessed     string      `json:"last_accessed,omitempty"`
	EnrolledAt       string      `json:"enrolled_at"`
	CompletedModules int         `json:"completed_modules"`
	TotalModules     int         `json:"total_modules"`
	NextLesson       *NextLesson `json:"next_lesson,omitempty"`
}
