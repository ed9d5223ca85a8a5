package repository

import (
	"context"

	"gorm.io/gorm"

	"learnhub/backend/internal/model"
)

// PaymentRepository 支付记录数据访问接口
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	GetByIntentID(ctx context.Context, intentID string) (*model.Payment, error)
	UpdateStatusByIntentID(ctx context.Context, intentID, status string) error
}

// paymentRepo PaymentRepository 的 GORM 实现
type paymentRepo struct {
	db *gorm.DB
}

// NewPaymentRepo 创建 PaymentRepository 实例
func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepo) GetByIntentID(ctx context.Context, intentID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("provider_intent_id = ?", intentID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepo) UpdateStatusByIntentID(ctx context.Context, intentID, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("provider_intent_id = ?", intentID).
		Update("status", status).Error
}
