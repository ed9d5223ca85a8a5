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

var (
	ErrCourseNotFound     = errors.New("课程不存在")
	ErrInstructorNotFound = errors.New("讲师不存在")
	ErrModuleNotFound     = errors.New("章节不存在")
)

// CourseService 课程业务接口
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	// DeleteModule 删除课程章节；章节不存在时返回 ErrModuleNotFound
	DeleteModule(ctx context.Context, moduleID string) error
	// CompleteModule 标记学生完成某章节（驱动"继续学习"进度）
	CompleteModule(ctx context.Context, userID, moduleID string) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		result = append(result, *toCourseResponse(&c))
	}
	return result, nil
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	// 外键完整性：讲师必须存在且为讲师角色
	instructor, err := s.repo.User.GetByID(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("查询讲师失败", zap.Error(err))
		return nil, err
	}
	if instructor.Role != model.RoleInstructor {
		return nil, ErrInstructorNotFound
	}

	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Duration:     req.Duration,
		Level:        req.Level,
		ImageURL:     req.ImageURL,
		InstructorID: &req.InstructorID,
		Instructor:   instructor,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return toCourseResponse(course), nil
}

func (s *courseService) DeleteModule(ctx context.Context, moduleID string) error {
	affected, err := s.repo.Module.Delete(ctx, moduleID)
	if err != nil {
		s.logger.Error("删除章节失败", zap.String("module_id", moduleID), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrModuleNotFound
	}
	return nil
}

func (s *courseService) CompleteModule(ctx context.Context, userID, moduleID string) error {
	module, err := s.repo.Module.GetByID(ctx, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrModuleNotFound
		}
		s.logger.Error("查询章节失败", zap.String("module_id", moduleID), zap.Error(err))
		return err
	}

	if err := s.repo.Module.MarkCompleted(ctx, userID, module.CourseID, moduleID); err != nil {
		s.logger.Error("标记章节完成失败", zap.Error(err))
		return err
	}
	return nil
}

// toCourseResponse 模型转课程响应
func toCourseResponse(c *model.Course) *dto.CourseResponse {
	resp := &dto.CourseResponse{
		ID:          c.CourseID,
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		Duration:    c.Duration,
		Level:       c.Level,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.InstructorID != nil {
		resp.InstructorID = *c.InstructorID
	}
	if c.Instructor != nil {
		resp.InstructorName = c.Instructor.Name
	}
	return resp
}
