package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
// 启动时二选一：NewRepository（GORM/PostgreSQL）或 NewNull（演示模式空结果实现）
type Repository struct {
	User        UserRepository
	Course      CourseRepository
	Module      ModuleRepository
	Enrollment  EnrollmentRepository
	Session     SessionRepository
	Appointment AppointmentRepository
	ResetToken  ResetTokenRepository
	Payment     PaymentRepository
}

// NewRepository 创建 GORM 实现的 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Course:      NewCourseRepo(db),
		Module:      NewModuleRepo(db),
		Enrollment:  NewEnrollmentRepo(db),
		Session:     NewSessionRepo(db),
		Appointment: NewAppointmentRepo(db),
		ResetToken:  NewResetTokenRepo(db),
		Payment:     NewPaymentRepo(db),
	}
}
