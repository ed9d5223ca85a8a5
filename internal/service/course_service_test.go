package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/model"
)

func TestCourseServiceCreate(t *testing.T) {
	repo := newMockRepository()
	repo.User = &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{UserID: id, Name: "李四", Role: model.RoleInstructor}, nil
		},
	}

	var saved *model.Course
	repo.Course = &mockCourseRepo{
		createFn: func(ctx context.Context, course *model.Course) error {
			saved = course
			return nil
		},
	}
	svc := NewCourseService(repo, zap.NewNop())

	course, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Title:        "Go 实战",
		Description:  "从零到一",
		Price:        199,
		Duration:     "8 周",
		Level:        "beginner",
		InstructorID: "u-9",
	})
	if err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}
	if saved == nil || saved.InstructorID == nil || *saved.InstructorID != "u-9" {
		t.Errorf("讲师关联不符: %+v", saved)
	}
	if course.Title != "Go 实战" || course.InstructorName != "李四" {
		t.Errorf("响应不符: %+v", course)
	}
}

func TestCourseServiceCreateInstructorNotFound(t *testing.T) {
	svc := NewCourseService(newMockRepository(), zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Title:        "Go 实战",
		Description:  "从零到一",
		Duration:     "8 周",
		Level:        "beginner",
		InstructorID: "missing",
	})
	if !errors.Is(err, ErrInstructorNotFound) {
		t.Errorf("期望 ErrInstructorNotFound，实际 %v", err)
	}
}

func TestCourseServiceCreateInstructorWrongRole(t *testing.T) {
	repo := newMockRepository()
	repo.User = &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{UserID: id, Role: model.RoleStudent}, nil
		},
	}
	svc := NewCourseService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Title:        "Go 实战",
		Description:  "从零到一",
		Duration:     "8 周",
		Level:        "beginner",
		InstructorID: "u-1",
	})
	// 学生账号不能作为课程讲师
	if !errors.Is(err, ErrInstructorNotFound) {
		t.Errorf("期望 ErrInstructorNotFound，实际 %v", err)
	}
}

func TestCourseServiceDeleteModule(t *testing.T) {
	repo := newMockRepository()
	repo.Module = &mockModuleRepo{
		deleteFn: func(ctx context.Context, id string) (int64, error) {
			if id == "m-1" {
				return 1, nil
			}
			return 0, nil
		},
	}
	svc := NewCourseService(repo, zap.NewNop())

	if err := svc.DeleteModule(context.Background(), "m-1"); err != nil {
		t.Errorf("删除存在的章节应成功: %v", err)
	}
	if err := svc.DeleteModule(context.Background(), "m-404"); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("删除不存在的章节应返回 ErrModuleNotFound，实际 %v", err)
	}
}

func TestCourseServiceCompleteModule(t *testing.T) {
	repo := newMockRepository()
	repo.Module = &mockModuleRepo{
		getByIDFn: func(ctx context.Context, id string) (*model.Module, error) {
			return &model.Module{ModuleID: id, CourseID: "c-1", OrderIndex: 2}, nil
		},
		markCompletedFn: func(ctx context.Context, userID, courseID, moduleID string) error {
			if userID != "u-1" || courseID != "c-1" || moduleID != "m-2" {
				t.Errorf("完成记录参数不符: %s %s %s", userID, courseID, moduleID)
			}
			return nil
		},
	}
	svc := NewCourseService(repo, zap.NewNop())

	if err := svc.CompleteModule(context.Background(), "u-1", "m-2"); err != nil {
		t.Fatalf("标记完成失败: %v", err)
	}
}
