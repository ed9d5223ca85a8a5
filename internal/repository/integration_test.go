//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnhub/backend/internal/model"
	"learnhub/backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=learnhub password=learnhub_password dbname=learnhub_test sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Module{},
		&model.ModuleProgress{},
		&model.Enrollment{},
		&model.LiveSession{},
		&model.SessionEnrollment{},
		&model.Appointment{},
		&model.PasswordResetToken{},
		&model.Payment{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// createUser 创建用户并返回清理函数
func createUser(t *testing.T, name, role, status string) (*model.User, func()) {
	t.Helper()
	ctx := context.Background()

	user := &model.User{
		Name:         name,
		Email:        fmt.Sprintf("test%d@learnhub.dev", time.Now().UnixNano()),
		PasswordHash: "$2a$10$placeholder",
		Role:         role,
		Status:       status,
	}
	if err := testDB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	cleanup := func() {
		testDB.Unscoped().Where("user_id = ?", user.UserID).Delete(&model.User{})
	}
	return user, cleanup
}

// createSession 创建指定讲师某天的直播课并返回清理函数
func createSession(t *testing.T, courseID, instructorID string, date time.Time, startTime string) (*model.LiveSession, func()) {
	t.Helper()
	ctx := context.Background()

	session := &model.LiveSession{
		CourseID:     courseID,
		InstructorID: instructorID,
		Title:        fmt.Sprintf("直播课-%d", time.Now().UnixNano()),
		SessionDate:  date,
		StartTime:    startTime,
		EndTime:      "",
		Status:       "scheduled",
	}
	if err := testDB.WithContext(ctx).Create(session).Error; err != nil {
		t.Fatalf("创建直播课失败: %v", err)
	}
	cleanup := func() {
		testDB.Unscoped().Where("session_id = ?", session.SessionID).Delete(&model.LiveSession{})
	}
	return session, cleanup
}

// ═══════════════════════════════════════════════════════════
// UserRepository
// ═══════════════════════════════════════════════════════════

func TestListAvailableInstructorsFiltersRoleAndStatus(t *testing.T) {
	ctx := context.Background()
	tag := time.Now().UnixNano()

	// 两名在职讲师（名字前缀保证 A 排在 B 前），一名停用讲师，一名在职学生
	instructorB, cleanB := createUser(t, fmt.Sprintf("B讲师-%d", tag), model.RoleInstructor, model.StatusActive)
	defer cleanB()
	instructorA, cleanA := createUser(t, fmt.Sprintf("A讲师-%d", tag), model.RoleInstructor, model.StatusActive)
	defer cleanA()
	inactive, cleanInactive := createUser(t, fmt.Sprintf("C讲师-%d", tag), model.RoleInstructor, model.StatusInactive)
	defer cleanInactive()
	student, cleanStudent := createUser(t, fmt.Sprintf("D学生-%d", tag), model.RoleStudent, model.StatusActive)
	defer cleanStudent()

	repo := repository.NewUserRepo(testDB)
	users, err := repo.ListAvailableInstructors(ctx)
	if err != nil {
		t.Fatalf("查询可预约讲师失败: %v", err)
	}

	// 库里可能有其它数据，只看本次创建的四个用户
	positions := map[string]int{}
	for i, u := range users {
		switch u.UserID {
		case instructorA.UserID, instructorB.UserID, inactive.UserID, student.UserID:
			positions[u.UserID] = i
		}
	}

	if _, ok := positions[instructorA.UserID]; !ok {
		t.Errorf("在职讲师 %s 应出现在结果中", instructorA.Name)
	}
	if _, ok := positions[instructorB.UserID]; !ok {
		t.Errorf("在职讲师 %s 应出现在结果中", instructorB.Name)
	}
	if _, ok := positions[inactive.UserID]; ok {
		t.Errorf("停用讲师 %s 不应出现在结果中", inactive.Name)
	}
	if _, ok := positions[student.UserID]; ok {
		t.Errorf("学生 %s 不应出现在结果中", student.Name)
	}
	if positions[instructorA.UserID] > positions[instructorB.UserID] {
		t.Errorf("结果应按姓名升序：%s 应排在 %s 前面", instructorA.Name, instructorB.Name)
	}
}

// ═══════════════════════════════════════════════════════════
// SessionRepository
// ═══════════════════════════════════════════════════════════

func TestListUpcomingByInstructorDateBoundary(t *testing.T) {
	ctx := context.Background()

	instructor, cleanInstructor := createUser(t, "日程讲师", model.RoleInstructor, model.StatusActive)
	defer cleanInstructor()
	other, cleanOther := createUser(t, "其他讲师", model.RoleInstructor, model.StatusActive)
	defer cleanOther()

	course := &model.Course{
		Title:        fmt.Sprintf("测试课程-%d", time.Now().UnixNano()),
		InstructorID: &instructor.UserID,
	}
	if err := testDB.WithContext(ctx).Create(course).Error; err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}
	defer testDB.Unscoped().Where("course_id = ?", course.CourseID).Delete(&model.Course{})

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	// 边界：今天的课要包含，昨天的课要排除；同日按开始时间排序
	past, cleanPast := createSession(t, course.CourseID, instructor.UserID, yesterday, "10:00")
	defer cleanPast()
	todayLate, cleanLate := createSession(t, course.CourseID, instructor.UserID, today, "14:00")
	defer cleanLate()
	todayEarly, cleanEarly := createSession(t, course.CourseID, instructor.UserID, today, "09:00")
	defer cleanEarly()
	future, cleanFuture := createSession(t, course.CourseID, instructor.UserID, tomorrow, "10:00")
	defer cleanFuture()
	foreign, cleanForeign := createSession(t, course.CourseID, other.UserID, today, "10:00")
	defer cleanForeign()

	repo := repository.NewSessionRepo(testDB)
	sessions, err := repo.ListUpcomingByInstructor(ctx, instructor.UserID, today)
	if err != nil {
		t.Fatalf("查询讲师直播课失败: %v", err)
	}

	var ids []string
	for _, s := range sessions {
		ids = append(ids, s.SessionID)
	}
	if len(ids) != 3 {
		t.Fatalf("期望 3 节课（今天两节 + 明天一节），实际 %d: %v", len(ids), ids)
	}
	if ids[0] != todayEarly.SessionID || ids[1] != todayLate.SessionID || ids[2] != future.SessionID {
		t.Errorf("排序应为日期升序、同日按开始时间升序，实际 %v", ids)
	}
	for _, s := range sessions {
		if s.SessionID == past.SessionID {
			t.Errorf("昨天的课不应出现在结果中")
		}
		if s.SessionID == foreign.SessionID {
			t.Errorf("其他讲师的课不应出现在结果中")
		}
	}
}
