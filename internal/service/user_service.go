package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/model"
	"learnhub/backend/internal/repository"
)

var (
	ErrEmailExists = errors.New("邮箱已被注册")
	ErrInvalidRole = errors.New("无效的角色")
)

// UserService 用户业务接口
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error)
	List(ctx context.Context, role string) ([]dto.UserResponse, error)
	ListAvailableInstructors(ctx context.Context) ([]dto.InstructorResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	// 角色缺省为 student
	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	// 检查邮箱唯一性
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 生成一次性临时密码并做 bcrypt 哈希——不存占位明文
	tempPwd, err := generateTempPassword(12)
	if err != nil {
		s.logger.Error("生成临时密码失败", zap.Error(err))
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPwd), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Role:         role,
		Status:       model.StatusActive,
		ImageURL:     req.ImageURL,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateUserResponse{
		User:         *toUserResponse(user),
		TempPassword: tempPwd,
	}, nil
}

func (s *userService) List(ctx context.Context, role string) ([]dto.UserResponse, error) {
	if role != "" && !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	users, err := s.repo.User.List(ctx, role)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, *toUserResponse(&u))
	}
	return result, nil
}

// ListAvailableInstructors 返回可预约讲师的公开投影（不含邮箱等隐私字段）
func (s *userService) ListAvailableInstructors(ctx context.Context) ([]dto.InstructorResponse, error) {
	users, err := s.repo.User.ListAvailableInstructors(ctx)
	if err != nil {
		s.logger.Error("列出可预约讲师失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InstructorResponse, 0, len(users))
	for _, u := range users {
		spec := ""
		if u.Specialization != nil {
			spec = *u.Specialization
		}
		result = append(result, dto.InstructorResponse{
			ID:             u.UserID,
			Name:           u.Name,
			Specialization: spec,
			Available:      true,
		})
	}
	return result, nil
}

// toUserResponse 模型转脱敏响应（auth/user 模块共用）
func toUserResponse(u *model.User) *dto.UserResponse {
	spec := ""
	if u.Specialization != nil {
		spec = *u.Specialization
	}
	return &dto.UserResponse{
		ID:             u.UserID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Status:         u.Status,
		Specialization: spec,
		ImageURL:       u.ImageURL,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

const tempPasswordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateTempPassword 生成随机临时密码（去掉易混淆字符）
func generateTempPassword(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tempPasswordCharset[n.Int64()]
	}
	return string(b), nil
}
