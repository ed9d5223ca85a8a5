package handler

import (
	"github.com/gin-gonic/gin"

	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/response"
)

// EnrollmentHandler 选课相关接口
type EnrollmentHandler struct {
	svc service.EnrollmentService
}

func NewEnrollmentHandler(svc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

// ListByStudent 学生的选课列表（含进度与下一章节）
// GET /api/v1/enrollments/student?userId=
func (h *EnrollmentHandler) ListByStudent(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.BadRequest(c, "缺少 userId 参数")
		return
	}

	enrollments, err := h.svc.ListByStudent(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"enrollments": enrollments})
}
