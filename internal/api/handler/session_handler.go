package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/response"
)

// SessionHandler 直播课相关接口
type SessionHandler struct {
	svc service.SessionService
}

func NewSessionHandler(svc service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// ListByInstructor 讲师的直播课安排
// GET /api/v1/instructors/sessions?instructorId=
func (h *SessionHandler) ListByInstructor(c *gin.Context) {
	instructorID := c.Query("instructorId")
	if instructorID == "" {
		response.BadRequest(c, "缺少 instructorId 参数")
		return
	}

	sessions, err := h.svc.ListByInstructor(c.Request.Context(), instructorID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"sessions": sessions})
}

// ListByStudent 学生可见的直播课（附报名与出勤标记）
// GET /api/v1/sessions/student?userId=
func (h *SessionHandler) ListByStudent(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.BadRequest(c, "缺少 userId 参数")
		return
	}

	sessions, err := h.svc.ListByStudent(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"sessions": sessions})
}

// InstructorCalendar 讲师日程 iCalendar 订阅源
// GET /api/v1/instructors/sessions/ics?instructorId=
func (h *SessionHandler) InstructorCalendar(c *gin.Context) {
	instructorID := c.Query("instructorId")
	if instructorID == "" {
		response.BadRequest(c, "缺少 instructorId 参数")
		return
	}

	ics, err := h.svc.InstructorCalendar(c.Request.Context(), instructorID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
