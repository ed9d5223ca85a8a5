package model

// User 用户表 — 对应 users
type User struct {
	UserID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role           string  `gorm:"type:varchar(20);not null;default:'student'"    json:"role"`
	Status         string  `gorm:"type:varchar(20);not null;default:'active'"     json:"status"`
	Specialization *string `gorm:"type:varchar(100)"                              json:"specialization,omitempty"`
	ImageURL       string  `gorm:"type:text"                                      json:"image_url"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
