package model

import "time"

// Appointment 学生与讲师的预约 — 对应 appointments
type Appointment struct {
	AppointmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID     string    `gorm:"type:uuid;not null"                             json:"student_id"`
	InstructorID  string    `gorm:"type:uuid;not null"                             json:"instructor_id"`
	Date          time.Time `gorm:"type:date;not null"                             json:"date"`
	Time          string    `gorm:"type:varchar(8);not null"                       json:"time"`
	Topic         string    `gorm:"type:varchar(200)"                              json:"topic"`
	Notes         string    `gorm:"type:text"                                      json:"notes"`
	Type          string    `gorm:"type:varchar(50)"                               json:"type"`
	Status        string    `gorm:"type:varchar(20);not null;default:'scheduled'"  json:"status"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Appointment) TableName() string { return "appointments" }
