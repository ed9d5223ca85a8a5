package dto

// ── 支付模块 DTO ──

// CreateIntentRequest 创建支付意向请求
type CreateIntentRequest struct {
	CourseID string  `json:"course_id" binding:"required,uuid"`
	Amount   float64 `json:"amount"    binding:"required,gt=0"`
}

// IntentResponse 支付意向响应
// ClientSecret 交给前端 Stripe.js 完成确认
type IntentResponse struct {
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret,omitempty"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
