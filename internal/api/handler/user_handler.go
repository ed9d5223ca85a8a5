package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/response"
)

// UserHandler 用户相关接口
type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List 列出用户，支持 ?role= 过滤
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	role := c.Query("role")

	users, err := h.svc.List(c.Request.Context(), role)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"users": users})
}

// Create 创建用户，返回一次性临时密码
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "用户信息无效："+err.Error())
		return
	}

	result, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{
		"success":       true,
		"user":          result.User,
		"temp_password": result.TempPassword,
	})
}

// AvailableInstructors 列出可预约的讲师
// GET /api/v1/instructors/available
func (h *UserHandler) AvailableInstructors(c *gin.Context) {
	instructors, err := h.svc.ListAvailableInstructors(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"instructors": instructors})
}
