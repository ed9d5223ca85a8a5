package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/response"
)

// AppointmentHandler 预约相关接口
type AppointmentHandler struct {
	svc service.AppointmentService
}

func NewAppointmentHandler(svc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// Book 以当前登录学生身份预约讲师
// POST /api/v1/appointments/book
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "预约信息无效："+err.Error())
		return
	}

	studentID := c.GetString("user_id")

	appointmentID, err := h.svc.Book(c.Request.Context(), studentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInstructorNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{"success": true, "id": appointmentID, "message": "预约成功"})
}
