package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"learnhub/backend/internal/model"
)

func TestNextLesson(t *testing.T) {
	modules := []model.Module{
		{ModuleID: "m-1", Title: "入门", OrderIndex: 1},
		{ModuleID: "m-2", Title: "进阶", OrderIndex: 2},
		{ModuleID: "m-3", Title: "实战", OrderIndex: 3},
	}

	tests := []struct {
		name      string
		completed map[string]bool
		wantID    string
	}{
		{"未开始学习时指向第一章", map[string]bool{}, "m-1"},
		{"完成第一章后指向第二章", map[string]bool{"m-1": true}, "m-2"},
		{"跳章完成时指向最大序号之后", map[string]bool{"m-2": true}, "m-3"},
		{"只剩最后一章", map[string]bool{"m-1": true, "m-2": true}, "m-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextLesson(modules, tt.completed)
			if got == nil {
				t.Fatal("期望返回下一章节")
			}
			if got.ModuleID != tt.wantID {
				t.Errorf("下一章节应为 %s，实际 %s", tt.wantID, got.ModuleID)
			}
		})
	}
}

func TestNextLessonAllCompleted(t *testing.T) {
	modules := []model.Module{
		{ModuleID: "m-1", OrderIndex: 1},
		{ModuleID: "m-2", OrderIndex: 2},
	}
	completed := map[string]bool{"m-1": true, "m-2": true}

	if got := nextLesson(modules, completed); got != nil {
		t.Errorf("全部完成时应返回 nil，实际 %+v", got)
	}
}

func TestNextLessonNoModules(t *testing.T) {
	if got := nextLesson(nil, map[string]bool{}); got != nil {
		t.Errorf("无章节课程应返回 nil，实际 %+v", got)
	}
}

func TestEnrollmentServiceListByStudent(t *testing.T) {
	enrolledAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	repo.Enrollment = &mockEnrollmentRepo{
		listByUserFn: func(ctx context.Context, userID string) ([]model.Enrollment, error) {
			return []model.Enrollment{
				{
					EnrollmentID: "e-1",
					UserID:       userID,
					CourseID:     "c-1",
					EnrolledAt:   enrolledAt,
					Course: &model.Course{
						CourseID: "c-1",
						Title:    "Go 实战",
						Level:    "beginner",
						Instructor: &model.User{
							UserID: "u-9",
							Name:   "李四",
						},
					},
				},
			}, nil
		},
	}
	repo.Module = &mockModuleRepo{
		listByCourseFn: func(ctx context.Context, courseID string) ([]model.Module, error) {
			return []model.Module{
				{ModuleID: "m-1", Title: "环境搭建", OrderIndex: 1},
				{ModuleID: "m-2", Title: "并发基础", OrderIndex: 2},
				{ModuleID: "m-3", Title: "项目实战", OrderIndex: 3},
			}, nil
		},
		listProgressFn: func(ctx context.Context, userID, courseID string) ([]model.ModuleProgress, error) {
			return []model.ModuleProgress{
				{ModuleID: "m-1", Completed: true},
				{ModuleID: "m-2", Completed: false},
			}, nil
		},
	}
	svc := NewEnrollmentService(repo, zap.NewNop())

	enrollments, err := svc.ListByStudent(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("查询选课失败: %v", err)
	}
	if len(enrollments) != 1 {
		t.Fatalf("期望 1 条选课，实际 %d", len(enrollments))
	}

	got := enrollments[0]
	if got.CourseTitle != "Go 实战" || got.InstructorName != "李四" {
		t.Errorf("课程信息不符: %+v", got)
	}
	if got.TotalModules != 3 || got.CompletedModules != 1 {
		t.Errorf("进度统计不符: total=%d completed=%d", got.TotalModules, got.CompletedModules)
	}
	// 未完成的进度记录不算完成；下一章节为 m-2
	if got.NextLesson == nil || got.NextLesson.ModuleID != "m-2" {
		t.Errorf("下一章节不符: %+v", got.NextLesson)
	}
}
