package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learnhub/backend/config"
	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/response"
)

// CourseHandler 课程与章节相关接口
type CourseHandler struct {
	cfg *config.Config
	svc service.CourseService
}

func NewCourseHandler(cfg *config.Config, svc service.CourseService) *CourseHandler {
	return &CourseHandler{cfg: cfg, svc: svc}
}

// List 课程列表
// 开启降级开关时查询失败返回空列表，保证前端目录页可用
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.svc.List(c.Request.Context())
	if err != nil {
		if h.cfg.Feature.CourseListDegrade {
			response.OK(c, gin.H{"courses": []dto.CourseResponse{}})
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"courses": courses})
}

// Create 创建课程
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "课程信息无效："+err.Error())
		return
	}

	course, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInstructorNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"success": true, "course": course})
}

// DeleteModule 删除课程章节
// DELETE /api/v1/modules/:id
func (h *CourseHandler) DeleteModule(c *gin.Context) {
	moduleID := c.Param("id")

	if err := h.svc.DeleteModule(c.Request.Context(), moduleID); err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"success": true, "id": moduleID})
}

// CompleteModule 标记当前用户完成某章节
// POST /api/v1/modules/:id/complete
func (h *CourseHandler) CompleteModule(c *gin.Context) {
	moduleID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.svc.CompleteModule(c.Request.Context(), userID, moduleID); err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"success": true})
}
