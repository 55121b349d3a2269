package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swishview/domain/dto"
	"swishview/infrastructure/logger"
	"swishview/interfaces/middleware"
	"swishview/usecase"
)

type IAdminHandler interface {
	ListCampaigns(ctx *gin.Context)
	SetCampaignStatus(ctx *gin.Context)
	PromoteToAdmin(ctx *gin.Context)
	Stats(ctx *gin.Context)
	ListPayments(ctx *gin.Context)
	SyncAnalytics(ctx *gin.Context)
}

type AdminHandler struct {
	adminUsecase     usecase.IAdminUsecase
	analyticsUsecase usecase.IAnalyticsUsecase
}

func NewAdminHandler(adminUsecase usecase.IAdminUsecase, analyticsUsecase usecase.IAnalyticsUsecase) IAdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, analyticsUsecase: analyticsUsecase}
}

func (h *AdminHandler) ListCampaigns(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	campaigns, err := h.adminUsecase.ListCampaigns(ctx.Request.Context(), sess)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

func (h *AdminHandler) SetCampaignStatus(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	id := ctx.Param("id")
	var req dto.SetStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.adminUsecase.SetCampaignStatus(ctx.Request.Context(), sess, id, req.Status); err != nil {
		logger.GetLogger().
			WithField("campaign_id", id).
			WithField("status", req.Status).
			WithField("error", err.Error()).
			Warn("admin status override failed")
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campaign_id": id, "status": req.Status})
}

func (h *AdminHandler) PromoteToAdmin(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	var req dto.PromoteReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if err := h.adminUsecase.PromoteToAdmin(ctx.Request.Context(), sess, req.Email); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"email": req.Email, "role": "admin"})
}

func (h *AdminHandler) Stats(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	stats, err := h.adminUsecase.Stats(ctx.Request.Context(), sess)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListPayments(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	campaignID := ctx.Param("id")
	payments, err := h.adminUsecase.ListPayments(ctx.Request.Context(), sess, campaignID)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campaign_id": campaignID, "payments": payments})
}

// SyncAnalytics triggers an on-demand refresh outside the periodic job.
func (h *AdminHandler) SyncAnalytics(ctx *gin.Context) {
	batchSize := 50
	if err := h.analyticsUsecase.SyncActive(ctx.Request.Context(), batchSize); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"synced": false, "error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"synced": true, "batch": batchSize})
}
