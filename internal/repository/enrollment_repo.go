package repository

import (
	"context"

	"gorm.io/gorm"

	"learnhub/backend/internal/model"
)

// EnrollmentRepository 选课数据访问接口
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	GetByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error)
	// ListByUser 列出学生的全部选课，预加载课程与讲师，按最近访问排序
	ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error)
	// ListByCourse 列出课程的全部选课（花名册导出用），预加载学生信息
	ListByCourse(ctx context.Context, courseID string) ([]model.Enrollment, error)
}

// enrollmentRepo EnrollmentRepository 的 GORM 实现
type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Instructor").
		Where("user_id = ?", userID).
		Order("last_accessed DESC NULLS LAST, enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("course_id = ?", courseID).
		Order("enrolled_at ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
