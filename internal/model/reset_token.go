package model

import "time"

// PasswordResetToken 密码重置令牌 — 对应 password_reset_tokens
// 只存哈希，明文令牌仅出现在发给用户的邮件链接中
type PasswordResetToken struct {
	ResetTokenID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       string     `gorm:"type:uuid;not null"                             json:"user_id"`
	TokenHash    string     `gorm:"type:varchar(255);not null"                     json:"-"`
	ExpiresAt    time.Time  `gorm:"not null"                                       json:"expires_at"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (PasswordResetToken) TableName() string { return "password_reset_tokens" }
