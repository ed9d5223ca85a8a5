package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/model"
	"learnhub/backend/internal/repository"
)

// EnrollmentService 选课业务接口
type EnrollmentService interface {
	// ListByStudent 列出学生选课并计算每门课的"下一章节"
	ListByStudent(ctx context.Context, userID string) ([]dto.EnrollmentResponse, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

func (s *enrollmentService) ListByStudent(ctx context.Context, userID string) ([]dto.EnrollmentResponse, error) {
	enrollments, err := s.repo.Enrollment.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询学生选课失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		modules, err := s.repo.Module.ListByCourse(ctx, e.CourseID)
		if err != nil {
			s.logger.Error("查询课程章节失败", zap.String("course_id", e.CourseID), zap.Error(err))
			return nil, err
		}
		progress, err := s.repo.Module.ListProgress(ctx, userID, e.CourseID)
		if err != nil {
			s.logger.Error("查询章节进度失败", zap.String("course_id", e.CourseID), zap.Error(err))
			return nil, err
		}

		resp := dto.EnrollmentResponse{
			ID:         e.EnrollmentID,
			CourseID:   e.CourseID,
			EnrolledAt: e.EnrolledAt.Format(time.RFC3339),
		}
		if e.LastAccessed != nil {
			resp.LastAccessed = e.LastAccessed.Format(time.RFC3339)
		}
		if e.Course != nil {
			resp.CourseTitle = e.Course.Title
			resp.CourseImageURL = e.Course.ImageURL
			resp.Level = e.Course.Level
			if e.Course.Instructor != nil {
				resp.InstructorName = e.Course.Instructor.Name
			}
		}

		completed := completedSet(progress)
		resp.TotalModules = len(modules)
		resp.CompletedModules = len(completed)
		resp.NextLesson = nextLesson(modules, completed)

		result = append(result, resp)
	}

	return result, nil
}

// completedSet 收集已完成的章节 ID
func completedSet(progress []model.ModuleProgress) map[string]bool {
	set := make(map[string]bool)
	for _, p := range progress {
		if p.Completed {
			set[p.ModuleID] = true
		}
	}
	return set
}

// nextLesson 计算"继续学习"指向的章节：
// 取 order_index 大于已完成最大序号的最小章节；全部完成时返回 nil。
// modules 已按 order_index 升序排列
func nextLesson(modules []model.Module, completed map[string]bool) *dto.NextLesson {
	maxCompleted := -1
	for _, m := range modules {
		if completed[m.ModuleID] && m.OrderIndex > maxCompleted {
			maxCompleted = m.OrderIndex
		}
	}

	for _, m := range modules {
		if m.OrderIndex > maxCompleted {
			return &dto.NextLesson{
				ModuleID:   m.ModuleID,
				Title:      m.Title,
				OrderIndex: m.OrderIndex,
			}
		}
	}
	return nil
}
