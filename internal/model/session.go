package model

import "time"

// LiveSession 直播课表 — 对应 live_sessions
// SessionDate 只取日期部分，StartTime/EndTime 为 "HH:MM" 文本（沿用排课约定）
type LiveSession struct {
	SessionID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID     string    `gorm:"type:uuid;not null"                             json:"course_id"`
	InstructorID string    `gorm:"type:uuid;not null"                             json:"instructor_id"`
	Title        string    `gorm:"type:varchar(200);not null"                     json:"title"`
	SessionDate  time.Time `gorm:"type:date;not null"                             json:"session_date"`
	StartTime    string    `gorm:"type:varchar(8);not null"                       json:"start_time"`
	EndTime      string    `gorm:"type:varchar(8)"                                json:"end_time"`
	MeetingURL   string    `gorm:"type:text"                                      json:"meeting_url"`
	Status       string    `gorm:"type:varchar(20);not null;default:'scheduled'"  json:"status"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (LiveSession) TableName() string { return "live_sessions" }

// SessionEnrollment 直播课报名/出勤记录 — 对应 session_enrollments
type SessionEnrollment struct {
	SessionEnrollmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"    json:"id"`
	SessionID           string    `gorm:"type:uuid;not null;uniqueIndex:idx_session_user"   json:"session_id"`
	UserID              string    `gorm:"type:uuid;not null;uniqueIndex:idx_session_user"   json:"user_id"`
	Attended            bool      `gorm:"not null;default:false"                            json:"attended"`
	CreatedAt           time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                json:"created_at"`
}

// TableName 指定表名
func (SessionEnrollment) TableName() string { return "session_enrollments" }
