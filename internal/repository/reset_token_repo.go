package repository

import (
	"context"

	"gorm.io/gorm"

	"learnhub/backend/internal/model"
)

// ResetTokenRepository 密码重置令牌数据访问接口
type ResetTokenRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	// InvalidateByUser 作废用户的全部未使用令牌（重复申请时旧链接失效）
	InvalidateByUser(ctx context.Context, userID string) error
}

// resetTokenRepo ResetTokenRepository 的 GORM 实现
type resetTokenRepo struct {
	db *gorm.DB
}

// NewResetTokenRepo 创建 ResetTokenRepository 实例
func NewResetTokenRepo(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepo{db: db}
}

func (r *resetTokenRepo) Create(ctx context.Context, token *model.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *resetTokenRepo) InvalidateByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&model.PasswordResetToken{}).
		Where("user_id = ? AND used_at IS NULL", userID).
		Update("used_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
