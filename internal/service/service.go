package service

import (
	"go.uber.org/zap"

	"learnhub/backend/config"
	"learnhub/backend/internal/repository"
	"learnhub/backend/pkg/jwt"
	"learnhub/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	User        UserService
	Course      CourseService
	Enrollment  EnrollmentService
	Session     SessionService
	Appointment AppointmentService
	Payment     PaymentService
	Export      ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, logger),
		Course:      NewCourseService(repo, logger),
		Enrollment:  NewEnrollmentService(repo, logger),
		Session:     NewSessionService(repo, logger),
		Appointment: NewAppointmentService(repo, logger),
		Payment:     NewPaymentService(&cfg.Payment, repo, logger),
		Export:      NewExportService(repo, logger),
	}
}
