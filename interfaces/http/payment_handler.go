package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swishview/domain/dto"
	"swishview/infrastructure/logger"
	"swishview/interfaces/middleware"
	"swishview/usecase"
)

type IPaymentHandler interface {
	Checkout(ctx *gin.Context)
	Confirm(ctx *gin.Context)
}

type PaymentHandler struct {
	paymentUsecase usecase.IPaymentUsecase
}

func NewPaymentHandler(paymentUsecase usecase.IPaymentUsecase) IPaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// Checkout creates a provider order for a campaign and returns the approval
// URL the frontend redirects the browser to.
func (h *PaymentHandler) Checkout(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	var req dto.CheckoutReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.CampaignID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "campaignId is required"})
		return
	}
	res, err := h.paymentUsecase.Initiate(ctx.Request.Context(), sess, req)
	if err != nil {
		logger.GetLogger().
			WithField("campaign_id", req.CampaignID).
			WithField("provider", req.Provider).
			WithField("error", err.Error()).
			Warn("checkout failed")
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// Confirm handles the browser return from the provider with
// payment=success|cancelled.
func (h *PaymentHandler) Confirm(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	var req dto.ConfirmReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	res, err := h.paymentUsecase.ConfirmReturn(ctx.Request.Context(), sess, req)
	if err != nil {
		logger.GetLogger().
			WithField("campaign_id", req.CampaignID).
			WithField("order_id", req.OrderID).
			WithField("error", err.Error()).
			Error("payment confirmation failed")
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, res)
}
