package handler

import (
	"learnhub/backend/config"
	"learnhub/backend/internal/service"
)

// Handler HTTP 处理器聚合
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Course      *CourseHandler
	Enrollment  *EnrollmentHandler
	Session     *SessionHandler
	Appointment *AppointmentHandler
	Payment     *PaymentHandler
	Export      *ExportHandler
}

func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(cfg, svc.Auth),
		User:        NewUserHandler(svc.User),
		Course:      NewCourseHandler(cfg, svc.Course),
		Enrollment:  NewEnrollmentHandler(svc.Enrollment),
		Session:     NewSessionHandler(svc.Session),
		Appointment: NewAppointmentHandler(svc.Appointment),
		Payment:     NewPaymentHandler(svc.Payment),
		Export:      NewExportHandler(svc.Export),
	}
}
