package model

// Course 课程表 — 对应 courses
type Course struct {
	CourseID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title        string  `gorm:"type:varchar(200);not null"                     json:"title"`
	Description  string  `gorm:"type:text"                                      json:"description"`
	Price        float64 `gorm:"type:numeric(10,2);not null;default:0"          json:"price"`
	Duration     string  `gorm:"type:varchar(50)"                               json:"duration"`
	Level        string  `gorm:"type:varchar(20)"                               json:"level"`
	ImageURL     string  `gorm:"type:text"                                      json:"image_url"`
	InstructorID *string `gorm:"type:uuid"                                      json:"instructor_id,omitempty"`
	BaseModel

	// 关联
	Instructor *User `gorm:"foreignKey:InstructorID;references:UserID" json:"instructor,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
