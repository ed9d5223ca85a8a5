package service

import (
	"context"
	"errors"
	"math"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnhub/backend/config"
	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/model"
	"learnhub/backend/internal/repository"
)

var (
	ErrPaymentDisabled = errors.New("支付功能未配置")
	ErrPaymentProvider = errors.New("支付服务商调用失败")
	ErrPaymentNotFound = errors.New("支付记录不存在")
)

// PaymentService 支付业务接口 — Stripe PaymentIntent 的薄封装
// 服务商错误记录日志后以 ErrPaymentProvider 向上传递；不做幂等键或 Webhook 对账
type PaymentService interface {
	CreateIntent(ctx context.Context, userID string, req *dto.CreateIntentRequest) (*dto.IntentResponse, error)
	// ConfirmPayment 查询并同步支付意向状态；只能查本人的支付记录
	ConfirmPayment(ctx context.Context, userID, intentID string) (*dto.IntentResponse, error)
}

type paymentService struct {
	cfg    *config.PaymentConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPaymentService 创建 PaymentService 实例
// Stripe SDK 使用包级密钥，启动时设置一次
func NewPaymentService(cfg *config.PaymentConfig, repo *repository.Repository, logger *zap.Logger) PaymentService {
	if cfg.SecretKey != "" {
		stripe.Key = cfg.SecretKey
	}
	return &paymentService{cfg: cfg, repo: repo, logger: logger}
}

func (s *paymentService) CreateIntent(ctx context.Context, userID string, req *dto.CreateIntentRequest) (*dto.IntentResponse, error) {
	if s.cfg.SecretKey == "" {
		return nil, ErrPaymentDisabled
	}

	// 金额转最小货币单位（分）
	amountMinor := int64(math.Round(req.Amount * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(s.cfg.Currency),
	}
	params.AddMetadata("course_id", req.CourseID)
	params.AddMetadata("user_id", userID)

	pi, err := paymentintent.New(params)
	if err != nil {
		s.logger.Error("创建支付意向失败",
			zap.String("course_id", req.CourseID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, ErrPaymentProvider
	}

	// 记录支付流水（状态以服务商为准）
	payment := &model.Payment{
		UserID:           userID,
		CourseID:         req.CourseID,
		ProviderIntentID: pi.ID,
		Amount:           req.Amount,
		Currency:         s.cfg.Currency,
		Status:           string(pi.Status),
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		// 流水写入失败不阻断支付流程，只记录
		s.logger.Error("写入支付流水失败", zap.String("intent_id", pi.ID), zap.Error(err))
	}

	return &dto.IntentResponse{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       req.Amount,
		Currency:     s.cfg.Currency,
	}, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, userID, intentID string) (*dto.IntentResponse, error) {
	if s.cfg.SecretKey == "" {
		return nil, ErrPaymentDisabled
	}

	// 归属校验：流水必须是本人的；不存在与非本人返回同一错误，不泄露流水是否存在
	record, err := s.repo.Payment.GetByIntentID(ctx, intentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("查询支付流水失败", zap.String("intent_id", intentID), zap.Error(err))
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrPaymentNotFound
	}

	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		s.logger.Error("查询支付意向失败", zap.String("intent_id", intentID), zap.Error(err))
		return nil, ErrPaymentProvider
	}

	if err := s.repo.Payment.UpdateStatusByIntentID(ctx, pi.ID, string(pi.Status)); err != nil {
		s.logger.Error("更新支付流水状态失败", zap.String("intent_id", pi.ID), zap.Error(err))
	}

	return &dto.IntentResponse{
		IntentID: pi.ID,
		Status:   string(pi.Status),
		Amount:   float64(pi.Amount) / 100,
		Currency: string(pi.Currency),
	}, nil
}
