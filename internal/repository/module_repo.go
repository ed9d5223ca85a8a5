package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnhub/backend/internal/model"
)

// ModuleRepository 章节与进度数据访问接口
type ModuleRepository interface {
	GetByID(ctx context.Context, id string) (*model.Module, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Module, error)
	// Delete 按 ID 删除章节，返回受影响行数（0 表示不存在）
	Delete(ctx context.Context, id string) (int64, error)
	ListProgress(ctx context.Context, userID, courseID string) ([]model.ModuleProgress, error)
	MarkCompleted(ctx context.Context, userID, courseID, moduleID string) error
}

// moduleRepo ModuleRepository 的 GORM 实现
type moduleRepo struct {
	db *gorm.DB
}

// NewModuleRepo 创建 ModuleRepository 实例
func NewModuleRepo(db *gorm.DB) ModuleRepository {
	return &moduleRepo{db: db}
}

func (r *moduleRepo) GetByID(ctx context.Context, id string) (*model.Module, error) {
	var m model.Module
	err := r.db.WithContext(ctx).
		Where("module_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *moduleRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Module, error) {
	var modules []model.Module
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("order_index ASC").
		Find(&modules).Error
	if err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepo) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("module_id = ?", id).
		Delete(&model.Module{})
	return result.RowsAffected, result.Error
}

func (r *moduleRepo) ListProgress(ctx context.Context, userID, courseID string) ([]model.ModuleProgress, error) {
	var progress []model.ModuleProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Find(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// MarkCompleted 标记章节完成，重复提交按 upsert 处理
func (r *moduleRepo) MarkCompleted(ctx context.Context, userID, courseID, moduleID string) error {
	now := time.Now()
	progress := model.ModuleProgress{
		UserID:      userID,
		CourseID:    courseID,
		ModuleID:    moduleID,
		Completed:   true,
		CompletedAt: &now,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at"}),
		}).
		Create(&progress).Error
}
