package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/model"
	"learnhub/backend/internal/repository"
)

var ErrInvalidDate = errors.New("日期格式无效，应为 YYYY-MM-DD")

// AppointmentService 预约业务接口
type AppointmentService interface {
	// Book 以认证学生身份创建预约，返回新预约 ID
	Book(ctx context.Context, studentID string, req *dto.BookAppointmentRequest) (string, error)
}

type appointmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAppointmentService 创建 AppointmentService 实例
func NewAppointmentService(repo *repository.Repository, logger *zap.Logger) AppointmentService {
	return &appointmentService{repo: repo, logger: logger}
}

func (s *appointmentService) Book(ctx context.Context, studentID string, req *dto.BookAppointmentRequest) (string, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return "", ErrInvalidDate
	}

	// 外键完整性：讲师必须存在
	instructor, err := s.repo.User.GetByID(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInstructorNotFound
		}
		s.logger.Error("查询讲师失败", zap.Error(err))
		return "", err
	}
	if instructor.Role != model.RoleInstructor {
		return "", ErrInstructorNotFound
	}

	appointment := &model.Appointment{
		StudentID:    studentID,
		InstructorID: req.InstructorID,
		Date:         date,
		Time:         req.Time,
		Topic:        req.Topic,
		Notes:        req.Notes,
		Type:         req.Type,
		Status:       model.AppointmentScheduled,
	}

	if err := s.repo.Appointment.Create(ctx, appointment); err != nil {
		s.logger.Error("创建预约失败", zap.Error(err))
		return "", err
	}

	return appointment.AppointmentID, nil
}
