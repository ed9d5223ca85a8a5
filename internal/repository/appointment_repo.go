package repository

import (
	"context"

	"gorm.io/gorm"

	"learnhub/backend/internal/model"
)

// AppointmentRepository 预约数据访问接口
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
}

// appointmentRepo AppointmentRepository 的 GORM 实现
type appointmentRepo struct {
	db *gorm.DB
}

// NewAppointmentRepo 创建 AppointmentRepository 实例
func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}
