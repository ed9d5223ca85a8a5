package model

// Payment 支付记录 — 对应 payments
// ProviderIntentID 关联 Stripe PaymentIntent，状态以服务商为准
type Payment struct {
	PaymentID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           string  `gorm:"type:uuid;not null"                             json:"user_id"`
	CourseID         string  `gorm:"type:uuid;not null"                             json:"course_id"`
	ProviderIntentID string  `gorm:"type:varchar(255);not null"                     json:"provider_intent_id"`
	Amount           float64 `gorm:"type:numeric(10,2);not null"                    json:"amount"`
	Currency         string  `gorm:"type:varchar(10);not null"                      json:"currency"`
	Status           string  `gorm:"type:varchar(30);not null"                      json:"status"`
	BaseModel
}

// TableName 指定表名
func (Payment) TableName() string { return "payments" }
