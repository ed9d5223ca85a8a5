package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"learnhub/backend/internal/model"
)

// SessionRepository 直播课数据访问接口
type SessionRepository interface {
	// ListUpcomingByInstructor 列出讲师 from 当日起的直播课，按日期和开始时间排序
	ListUpcomingByInstructor(ctx context.Context, instructorID string, from time.Time) ([]model.LiveSession, error)
	// ListForStudent 列出学生已选课程关联的直播课
	ListForStudent(ctx context.Context, userID string) ([]model.LiveSession, error)
	// ListEnrollmentsByUser 列出学生自己的直播课报名记录
	ListEnrollmentsByUser(ctx context.Context, userID string) ([]model.SessionEnrollment, error)
}

// sessionRepo SessionRepository 的 GORM 实现
type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo 创建 SessionRepository 实例
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) ListUpcomingByInstructor(ctx context.Context, instructorID string, from time.Time) ([]model.LiveSession, error) {
	var sessions []model.LiveSession
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("instructor_id = ? AND session_date >= ?", instructorID, from.Format("2006-01-02")).
		Order("session_date ASC, start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) ListForStudent(ctx context.Context, userID string) ([]model.LiveSession, error) {
	var sessions []model.LiveSession
	err := r.db.WithContext(ctx).
		Preload("Course").
		Joins("JOIN enrollments ON enrollments.course_id = live_sessions.course_id").
		Where("enrollments.user_id = ?", userID).
		Order("live_sessions.session_date ASC, live_sessions.start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) ListEnrollmentsByUser(ctx context.Context, userID string) ([]model.SessionEnrollment, error) {
	var enrollments []model.SessionEnrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
