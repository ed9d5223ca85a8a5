package model

import "time"

// Enrollment 选课记录 — 对应 enrollments
// (user_id, course_id) 唯一，驱动"继续学习"查询
type Enrollment struct {
	EnrollmentID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"id"`
	UserID       string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_course"  json:"user_id"`
	CourseID     string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_course"  json:"course_id"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
	EnrolledAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"enrolled_at"`

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
	User   *User   `gorm:"foreignKey:UserID;references:UserID"     json:"user,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }
