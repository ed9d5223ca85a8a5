package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnhub/backend/internal/repository"
)

var ErrExportNoEnrollments = errors.New("该课程暂无选课记录")

// ExportService 导出业务接口
// 花名册以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportEnrollments 导出课程选课花名册为 Excel
	ExportEnrollments(ctx context.Context, courseID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportEnrollments(ctx context.Context, courseID string) (*bytes.Buffer, string, error) {
	// 1. 课程必须存在
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 查询选课记录
	enrollments, err := s.repo.Enrollment.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询课程选课失败", zap.Error(err))
		return nil, "", err
	}
	if len(enrollments) == 0 {
		return nil, "", ErrExportNoEnrollments
	}

	// 3. 生成 Excel：一个 Sheet，表头 + 每行一名学生
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"姓名", "邮箱", "选课时间", "最近访问"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			s.logger.Error("写入表头失败", zap.Error(err))
			return nil, "", err
		}
	}

	for row, e := range enrollments {
		name, email := "", ""
		if e.User != nil {
			name = e.User.Name
			email = e.User.Email
		}
		last := ""
		if e.LastAccessed != nil {
			last = e.LastAccessed.Format("2006-01-02 15:04")
		}
		values := []interface{}{
			name,
			email,
			e.EnrolledAt.Format("2006-01-02 15:04"),
			last,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				s.logger.Error("写入数据行失败", zap.Error(err))
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("roster_%s.xlsx", course.Title)
	return buf, filename, nil
}
