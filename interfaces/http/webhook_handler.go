package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"swishview/infrastructure/clients/stripe"
	"swishview/infrastructure/logger"
	"swishview/usecase"
)

type IWebhookHandler interface {
	StripeWebhook(ctx *gin.Context)
}

type WebhookHandler struct {
	stripeGateway  *stripe.Gateway
	paymentUsecase usecase.IPaymentUsecase
}

func NewWebhookHandler(stripeGateway *stripe.Gateway, paymentUsecase usecase.IPaymentUsecase) IWebhookHandler {
	return &WebhookHandler{stripeGateway: stripeGateway, paymentUsecase: paymentUsecase}
}

// StripeWebhook receives provider notifications. A bad signature is a 400 so
// Stripe retries against a fixed deployment; once verified we always return
// 200, because downstream failures are recovered from logs and alerts, not by
// replaying the event at us.
func (h *WebhookHandler) StripeWebhook(ctx *gin.Context) {
	const maxBodyBytes = 1 << 16
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxBodyBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unreadable payload"})
		return
	}
	event, err := h.stripeGateway.ParseWebhookEvent(payload, ctx.GetHeader("Stripe-Signature"))
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Warn("stripe webhook rejected")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.paymentUsecase.HandleGatewayEvent(ctx.Request.Context(), *event); err != nil {
		logger.GetLogger().
			WithField("order_id", event.OrderID).
			WithField("error", err.Error()).
			Error("stripe webhook processing failed")
	}
	ctx.JSON(http.StatusOK, gin.H{"received": true})
}
