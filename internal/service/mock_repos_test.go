package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"learnhub/backend/internal/model"
	"learnhub/backend/internal/repository"
)

// 手写 Repository mock：函数字段未设置时按 "记录不存在 / 空结果" 处理

type mockUserRepo struct {
	createFn     func(ctx context.Context, user *model.User) error
	getByIDFn    func(ctx context.Context, id string) (*model.User, error)
	getByEmailFn func(ctx context.Context, email string) (*model.User, error)
	listFn       func(ctx context.Context, role string) ([]model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error { return nil }

func (m *mockUserRepo) List(ctx context.Context, role string) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepo) ListAvailableInstructors(ctx context.Context) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, model.RoleInstructor)
	}
	return nil, nil
}

type mockCourseRepo struct {
	createFn  func(ctx context.Context, course *model.Course) error
	getByIDFn func(ctx context.Context, id string) (*model.Course, error)
	listFn    func(ctx context.Context) ([]model.Course, error)
}

func (m *mockCourseRepo) Create(ctx context.Context, course *model.Course) error {
	if m.createFn != nil {
		return m.createFn(ctx, course)
	}
	return nil
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(ctx context.Context) ([]model.Course, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockModuleRepo struct {
	getByIDFn       func(ctx context.Context, id string) (*model.Module, error)
	listByCourseFn  func(ctx context.Context, courseID string) ([]model.Module, error)
	deleteFn        func(ctx context.Context, id string) (int64, error)
	listProgressFn  func(ctx context.Context, userID, courseID string) ([]model.ModuleProgress, error)
	markCompletedFn func(ctx context.Context, userID, courseID, moduleID string) error
}

func (m *mockModuleRepo) GetByID(ctx context.Context, id string) (*model.Module, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModuleRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Module, error) {
	if m.listByCourseFn != nil {
		return m.listByCourseFn(ctx, courseID)
	}
	return nil, nil
}

func (m *mockModuleRepo) Delete(ctx context.Context, id string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 0, nil
}

func (m *mockModuleRepo) ListProgress(ctx context.Context, userID, courseID string) ([]model.ModuleProgress, error) {
	if m.listProgressFn != nil {
		return m.listProgressFn(ctx, userID, courseID)
	}
	return nil, nil
}

func (m *mockModuleRepo) MarkCompleted(ctx context.Context, userID, courseID, moduleID string) error {
	if m.markCompletedFn != nil {
		return m.markCompletedFn(ctx, userID, courseID, moduleID)
	}
	return nil
}

type mockEnrollmentRepo struct {
	createFn       func(ctx context.Context, enrollment *model.Enrollment) error
	listByUserFn   func(ctx context.Context, userID string) ([]model.Enrollment, error)
	listByCourseFn func(ctx context.Context, courseID string) ([]model.Enrollment, error)
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	if m.createFn != nil {
		return m.createFn(ctx, enrollment)
	}
	return nil
}

func (m *mockEnrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockEnrollmentRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Enrollment, error) {
	if m.listByCourseFn != nil {
		return m.listByCourseFn(ctx, courseID)
	}
	return nil, nil
}

type mockSessionRepo struct {
	listUpcomingFn     func(ctx context.Context, instructorID string, from time.Time) ([]model.LiveSession, error)
	listForStudentFn   func(ctx context.Context, userID string) ([]model.LiveSession, error)
	listEnrollByUserFn func(ctx context.Context, userID string) ([]model.SessionEnrollment, error)
}

func (m *mockSessionRepo) ListUpcomingByInstructor(ctx context.Context, instructorID string, from time.Time) ([]model.LiveSession, error) {
	if m.listUpcomingFn != nil {
		return m.listUpcomingFn(ctx, instructorID, from)
	}
	return nil, nil
}

func (m *mockSessionRepo) ListForStudent(ctx context.Context, userID string) ([]model.LiveSession, error) {
	if m.listForStudentFn != nil {
		return m.listForStudentFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSessionRepo) ListEnrollmentsByUser(ctx context.Context, userID string) ([]model.SessionEnrollment, error) {
	if m.listEnrollByUserFn != nil {
		return m.listEnrollByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockAppointmentRepo struct {
	createFn func(ctx context.Context, appointment *model.Appointment) error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	if m.createFn != nil {
		return m.createFn(ctx, appointment)
	}
	return nil
}

type mockResetTokenRepo struct {
	createFn     func(ctx context.Context, token *model.PasswordResetToken) error
	invalidateFn func(ctx context.Context, userID string) error
}

func (m *mockResetTokenRepo) Create(ctx context.Context, token *model.PasswordResetToken) error {
	if m.createFn != nil {
		return m.createFn(ctx, token)
	}
	return nil
}

func (m *mockResetTokenRepo) InvalidateByUser(ctx context.Context, userID string) error {
	if m.invalidateFn != nil {
		return m.invalidateFn(ctx, userID)
	}
	return nil
}

type mockPaymentRepo struct {
	createFn      func(ctx context.Context, payment *model.Payment) error
	getByIntentFn func(ctx context.Context, intentID string) (*model.Payment, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	if m.createFn != nil {
		return m.createFn(ctx, payment)
	}
	return nil
}

func (m *mockPaymentRepo) GetByIntentID(ctx context.Context, intentID string) (*model.Payment, error) {
	if m.getByIntentFn != nil {
		return m.getByIntentFn(ctx, intentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRepo) UpdateStatusByIntentID(ctx context.Context, intentID, status string) error {
	return nil
}

// newMockRepository 组装全 mock 的 Repository 聚合，未覆盖的字段用空 mock 填充
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:        &mockUserRepo{},
		Course:      &mockCourseRepo{},
		Module:      &mockModuleRepo{},
		Enrollment:  &mockEnrollmentRepo{},
		Session:     &mockSessionRepo{},
		Appointment: &mockAppointmentRepo{},
		ResetToken:  &mockResetTokenRepo{},
		Payment:     &mockPaymentRepo{},
	}
}
