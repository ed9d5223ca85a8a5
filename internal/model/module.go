package model

import "time"

// Module 课程章节表 — 对应 modules
// OrderIndex 决定学习顺序，同一课程内唯一
type Module struct {
	ModuleID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID   string `gorm:"type:uuid;not null"                             json:"course_id"`
	Title      string `gorm:"type:varchar(200);not null"                     json:"title"`
	OrderIndex int    `gorm:"not null"                                       json:"order_index"`
	BaseModel
}

// TableName 指定表名
func (Module) TableName() string { return "modules" }

// ModuleProgress 章节完成进度 — 对应 module_progress
type ModuleProgress struct {
	ProgressID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_module" json:"user_id"`
	CourseID    string     `gorm:"type:uuid;not null"                             json:"course_id"`
	ModuleID    string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_module" json:"module_id"`
	Completed   bool       `gorm:"not null;default:false"                         json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName 指定表名
func (ModuleProgress) TableName() string { return "module_progress" }
