package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learnhub/backend/internal/dto"
	"learnhub/backend/internal/service"
	"learnhub/backend/pkg/response"
)

// PaymentHandler 支付相关接口
type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreateIntent 创建支付意向
// POST /api/v1/payments/intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "支付参数无效："+err.Error())
		return
	}

	userID := c.GetString("user_id")

	intent, err := h.svc.CreateIntent(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentDisabled):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrPaymentProvider):
			response.BadGateway(c, "支付服务暂时不可用")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{"success": true, "intent": intent})
}

// Confirm 查询并同步支付意向状态（仅限本人的支付记录）
// GET /api/v1/payments/:id
func (h *PaymentHandler) Confirm(c *gin.Context) {
	intentID := c.Param("id")
	userID := c.GetString("user_id")

	intent, err := h.svc.ConfirmPayment(c.Request.Context(), userID, intentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentDisabled):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrPaymentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrPaymentProvider):
			response.BadGateway(c, "支付服务暂时不可用")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"success": true, "intent": intent})
}
