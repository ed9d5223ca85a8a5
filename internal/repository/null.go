package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnhub/backend/internal/model"
)

// NewNull 创建演示模式 Repository 聚合
// 未配置数据库连接时启用：读操作记录日志并返回空结果或"不存在"，
// 写操作记录日志并伪造成功（分配 ID 但不落盘）。降级策略在启动时显式选择，
// 不是错误，用于无数据库的预览环境
func NewNull(logger *zap.Logger) *Repository {
	return &Repository{
		User:        &nullUserRepo{logger: logger},
		Course:      &nullCourseRepo{logger: logger},
		Module:      &nullModuleRepo{logger: logger},
		Enrollment:  &nullEnrollmentRepo{logger: logger},
		Session:     &nullSessionRepo{logger: logger},
		Appointment: &nullAppointmentRepo{logger: logger},
		ResetToken:  &nullResetTokenRepo{logger: logger},
		Payment:     &nullPaymentRepo{logger: logger},
	}
}

func logNullOp(logger *zap.Logger, op string) {
	logger.Debug("演示模式数据层调用", zap.String("op", op))
}

// ── User ──

type nullUserRepo struct{ logger *zap.Logger }

func (n *nullUserRepo) Create(_ context.Context, user *model.User) error {
	logNullOp(n.logger, "user.create")
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	return nil
}

func (n *nullUserRepo) GetByID(_ context.Context, _ string) (*model.User, error) {
	logNullOp(n.logger, "user.get_by_id")
	return nil, gorm.ErrRecordNotFound
}

func (n *nullUserRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	logNullOp(n.logger, "user.get_by_email")
	return nil, gorm.ErrRecordNotFound
}

func (n *nullUserRepo) Update(_ context.Context, _ *model.User) error {
	logNullOp(n.logger, "user.update")
	return nil
}

func (n *nullUserRepo) List(_ context.Context, _ string) ([]model.User, error) {
	logNullOp(n.logger, "user.list")
	return []model.User{}, nil
}

func (n *nullUserRepo) ListAvailableInstructors(_ context.Context) ([]model.User, error) {
	logNullOp(n.logger, "user.list_available_instructors")
	return []model.User{}, nil
}

// ── Course ──

type nullCourseRepo struct{ logger *zap.Logger }

func (n *nullCourseRepo) Create(_ context.Context, course *model.Course) error {
	logNullOp(n.logger, "course.create")
	if course.CourseID == "" {
		course.CourseID = uuid.NewString()
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	return nil
}

func (n *nullCourseRepo) GetByID(_ context.Context, _ string) (*model.Course, error) {
	logNullOp(n.logger, "course.get_by_id")
	return nil, gorm.ErrRecordNotFound
}

func (n *nullCourseRepo) List(_ context.Context) ([]model.Course, error) {
	logNullOp(n.logger, "course.list")
	return []model.Course{}, nil
}

// ── Module ──

type nullModuleRepo struct{ logger *zap.Logger }

func (n *nullModuleRepo) GetByID(_ context.Context, _ string) (*model.Module, error) {
	logNullOp(n.logger, "module.get_by_id")
	return nil, gorm.ErrRecordNotFound
}

func (n *nullModuleRepo) ListByCourse(_ context.Context, _ string) ([]model.Module, error) {
	logNullOp(n.logger, "module.list_by_course")
	return []model.Module{}, nil
}

func (n *nullModuleRepo) Delete(_ context.Context, _ string) (int64, error) {
	logNullOp(n.logger, "module.delete")
	return 0, nil // 空数据层永远没有可删的行
}

func (n *nullModuleRepo) ListProgress(_ context.Context, _, _ string) ([]model.ModuleProgress, error) {
	logNullOp(n.logger, "module.list_progress")
	return []model.ModuleProgress{}, nil
}

func (n *nullModuleRepo) MarkCompleted(_ context.Context, _, _, _ string) error {
	logNullOp(n.logger, "module.mark_completed")
	return nil
}

// ── Enrollment ──

type nullEnrollmentRepo struct{ logger *zap.Logger }

func (n *nullEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	logNullOp(n.logger, "enrollment.create")
	if enrollment.EnrollmentID == "" {
		enrollment.EnrollmentID = uuid.NewString()
	}
	return nil
}

func (n *nullEnrollmentRepo) GetByUserAndCourse(_ context.Context, _, _ string) (*model.Enrollment, error) {
	logNullOp(n.logger, "enrollment.get_by_user_and_course")
	return nil, gorm.ErrRecordNotFound
}

func (n *nullEnrollmentRepo) ListByUser(_ context.Context, _ string) ([]model.Enrollment, error) {
	logNullOp(n.logger, "enrollment.list_by_user")
	return []model.Enrollment{}, nil
}

func (n *nullEnrollmentRepo) ListByCourse(_ context.Context, _ string) ([]model.Enrollment, error) {
	logNullOp(n.logger, "enrollment.list_by_course")
	return []model.Enrollment{}, nil
}

// ── Session ──

type nullSessionRepo struct{ logger *zap.Logger }

func (n *nullSessionRepo) ListUpcomingByInstructor(_ context.Context, _ string, _ time.Time) ([]model.LiveSession, error) {
	logNullOp(n.logger, "session.list_upcoming_by_instructor")
	return []model.LiveSession{}, nil
}

func (n *nullSessionRepo) ListForStudent(_ context.Context, _ string) ([]model.LiveSession, error) {
	logNullOp(n.logger, "session.list_for_student")
	return []model.LiveSession{}, nil
}

func (n *nullSessionRepo) ListEnrollmentsByUser(_ context.Context, _ string) ([]model.SessionEnrollment, error) {
	logNullOp(n.logger, "session.list_enrollments_by_user")
	return []model.SessionEnrollment{}, nil
}

// ── Appointment ──

type nullAppointmentRepo struct{ logger *zap.Logger }

func (n *nullAppointmentRepo) Create(_ context.Context, appointment *model.Appointment) error {
	logNullOp(n.logger, "appointment.create")
	if appointment.AppointmentID == "" {
		appointment.AppointmentID = uuid.NewString()
	}
	appointment.CreatedAt = time.Now()
	return nil
}

// ── ResetToken ──

type nullResetTokenRepo struct{ logger *zap.Logger }

func (n *nullResetTokenRepo) Create(_ context.Context, token *model.PasswordResetToken) error {
	logNullOp(n.logger, "reset_token.create")
	if token.ResetTokenID == "" {
		token.ResetTokenID = uuid.NewString()
	}
	return nil
}

func (n *nullResetTokenRepo) InvalidateByUser(_ context.Context, _ string) error {
	logNullOp(n.logger, "reset_token.invalidate_by_user")
	return nil
}

// ── Payment ──

type nullPaymentRepo struct{ logger *zap.Logger }

func (n *nullPaymentRepo) Create(_ context.Context, payment *model.Payment) error {
	logNullOp(n.logger, "payment.create")
	if payment.PaymentID == "" {
		payment.PaymentID = uuid.NewString()
	}
	return nil
}

func (n *nullPaymentRepo) GetByIntentID(_ context.Context, _ string) (*model.Payment, error) {
	logNullOp(n.logger, "payment.get_by_intent_id")
	return nil, gorm.ErrRecordNotFound
}

func (n *nullPaymentRepo) UpdateStatusByIntentID(_ context.Context, _, _ string) error {
	logNullOp(n.logger, "payment.update_status_by_intent_id")
	return nil
}
