package dto

// ── 直播课模块 DTO ──

// SessionResponse 直播课响应（讲师视角）
type SessionResponse struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	CourseTitle string `json:"course_title,omitempty"`
	Title       string `json:"title"`
	SessionDate string `json:"session_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time,omitempty"`
	MeetingURL  string `json:"meeting_url,omitempty"`
	Status      string `json:"status"`
}

// StudentSessionResponse 直播课响应（学生视角，附报名与出勤标记）
type StudentSessionResponse struct {
	SessionResponse
	Enrolled bool `json:"enrolled"`
	Attended bool `json:"attended"`
}
