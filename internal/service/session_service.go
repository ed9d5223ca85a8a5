package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/model"
	"learnhub/backend/internal/repository"
)

// SessionService 直播课业务接口
type SessionService interface {
	// ListByInstructor 列出讲师当日及之后的直播课（按日期、开始时间排序）
	ListByInstructor(ctx context.Context, instructorID string) ([]dto.SessionResponse, error)
	// ListByStudent 列出学生已选课程的直播课，附报名与出勤标记
	ListByStudent(ctx context.Context, userID string) ([]dto.StudentSessionResponse, error)
	// InstructorCalendar 讲师日程的 iCalendar 订阅源
	InstructorCalendar(ctx context.Context, instructorID string) (string, error)
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 测试可注入
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger, now: time.Now}
}

func (s *sessionService) ListByInstructor(ctx context.Context, instructorID string) ([]dto.SessionResponse, error) {
	sessions, err := s.repo.Session.ListUpcomingByInstructor(ctx, instructorID, s.now())
	if err != nil {
		s.logger.Error("查询讲师直播课失败", zap.String("instructor_id", instructorID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, *toSessionResponse(&sess))
	}
	return result, nil
}

func (s *sessionService) ListByStudent(ctx context.Context, userID string) ([]dto.StudentSessionResponse, error) {
	sessions, err := s.repo.Session.ListForStudent(ctx, userID)
	if err != nil {
		s.logger.Error("查询学生直播课失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	own, err := s.repo.Session.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询学生直播课报名失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	// session_id → 本人报名记录
	enrolled := make(map[string]model.SessionEnrollment, len(own))
	for _, se := range own {
		enrolled[se.SessionID] = se
	}

	result := make([]dto.StudentSessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		resp := dto.StudentSessionResponse{SessionResponse: *toSessionResponse(&sess)}
		if se, ok := enrolled[sess.SessionID]; ok {
			resp.Enrolled = true
			resp.Attended = se.Attended
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *sessionService) InstructorCalendar(ctx context.Context, instructorID string) (string, error) {
	sessions, err := s.repo.Session.ListUpcomingByInstructor(ctx, instructorID, s.now())
	if err != nil {
		s.logger.Error("生成讲师日历失败", zap.String("instructor_id", instructorID), zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, sess := range sessions {
		event := cal.AddEvent(fmt.Sprintf("session-%s@learnhub", sess.SessionID))
		event.SetDtStampTime(s.now())
		event.SetSummary(sess.Title)
		if sess.Course != nil {
			event.SetDescription(sess.Course.Title)
		}
		if sess.MeetingURL != "" {
			event.SetLocation(sess.MeetingURL)
		}

		start := combineDateTime(sess.SessionDate, sess.StartTime)
		event.SetStartAt(start)
		if sess.EndTime != "" {
			event.SetEndAt(combineDateTime(sess.SessionDate, sess.EndTime))
		} else {
			event.SetEndAt(start.Add(time.Hour))
		}
	}

	return cal.Serialize(), nil
}

// combineDateTime 合并日期列与 "HH:MM" 时间列
func combineDateTime(date time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// toSessionResponse 模型转直播课响应
func toSessionResponse(sess *model.LiveSession) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:          sess.SessionID,
		CourseID:    sess.CourseID,
		Title:       sess.Title,
		SessionDate: sess.SessionDate.Format("2006-01-02"),
		StartTime:   sess.StartTime,
		EndTime:     sess.EndTime,
		MeetingURL:  sess.MeetingURL,
		Status:      sess.Status,
	}
	if sess.Course != nil {
		resp.CourseTitle = sess.Course.Title
	}
	return resp
}
