package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub/backend/config"
	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/model"
	"learnhub/backend/internal/repository"
	"learnhub/backend/pkg/jwt"
	"learnhub/backend/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
)

// AuthService 认证业务接口
// 无效凭证与无效 Token 以业务错误返回，不抛 500；只有基础设施错误向上传递
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	// CreateResetToken 生成并持久化密码重置令牌；邮件投递由外部系统负责。
	// 邮箱不存在时静默成功，避免账号枚举
	CreateResetToken(ctx context.Context, email string) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error) {
	// 1. 按邮箱查询用户（忽略大小写）
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token
	token, err := s.jwtMgr.GenerateToken(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("生成 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResult{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout 将 Token 的 JTI 加入 Redis 黑名单
// Redis 不可用时仅记录日志，登出依然成功（Cookie 由路由层清除）
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Warn("Token 加入黑名单失败", zap.Error(err))
	}
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询当前用户失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *authService) CreateResetToken(ctx context.Context, email string) error {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 静默成功：响应与存在的邮箱一致
			s.logger.Info("忽略未知邮箱的重置请求")
			return nil
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	// 作废旧令牌后签发新令牌
	if err := s.repo.ResetToken.InvalidateByUser(ctx, user.UserID); err != nil {
		s.logger.Error("作废旧重置令牌失败", zap.Error(err))
		return err
	}

	raw := uuid.NewString()
	sum := sha256.Sum256([]byte(raw))

	token := &model.PasswordResetToken{
		UserID:    user.UserID,
		TokenHash: hex.EncodeToString(sum[:]),
		ExpiresAt: time.Now().Add(s.cfg.Auth.ResetTokenTTL),
	}
	if err := s.repo.ResetToken.Create(ctx, token); err != nil {
		s.logger.Error("创建重置令牌失败", zap.Error(err))
		return err
	}

	// 明文令牌只进邮件渠道，这里仅记录已签发
	s.logger.Info("密码重置令牌已签发", zap.String("user_id", user.UserID))
	return nil
}
