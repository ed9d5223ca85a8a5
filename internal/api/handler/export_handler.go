package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/response"
)

// ExportHandler 数据导出接口
type ExportHandler struct {
	svc service.ExportService
}

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Enrollments 导出课程选课花名册 Excel
// GET /api/v1/export/enrollments?courseId=
func (h *ExportHandler) Enrollments(c *gin.Context) {
	courseID := c.Query("courseId")
	if courseID == "" {
		response.BadRequest(c, "缺少 courseId 参数")
		return
	}

	buf, filename, err := h.svc.ExportEnrollments(c.Request.Context(), courseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrExportNoEnrollments):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
