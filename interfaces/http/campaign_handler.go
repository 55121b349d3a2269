package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swishview/domain/dto"
	"swishview/infrastructure/logger"
	"swishview/interfaces/middleware"
	"swishview/usecase"
)

type ICampaignHandler interface {
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Get(ctx *gin.Context)
	List(ctx *gin.Context)
	VideoPreview(ctx *gin.Context)
	Analytics(ctx *gin.Context)
}

type CampaignHandler struct {
	campaignUsecase  usecase.ICampaignUsecase
	analyticsUsecase usecase.IAnalyticsUsecase
}

func NewCampaignHandler(campaignUsecase usecase.ICampaignUsecase, analyticsUsecase usecase.IAnalyticsUsecase) ICampaignHandler {
	return &CampaignHandler{campaignUsecase: campaignUsecase, analyticsUsecase: analyticsUsecase}
}

func (h *CampaignHandler) Create(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	var req dto.CampaignReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	campaign, err := h.campaignUsecase.Create(ctx.Request.Context(), sess, req)
	if err != nil {
		logger.GetLogger().WithField("user_id", sess.UserID).WithField("error", err.Error()).Warn("campaign create failed")
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, campaign)
}

func (h *CampaignHandler) Update(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	id := ctx.Param("id")
	var req dto.CampaignReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	campaign, err := h.campaignUsecase.Update(ctx.Request.Context(), sess, id, req)
	if err != nil {
		logger.GetLogger().WithField("campaign_id", id).WithField("error", err.Error()).Warn("campaign update failed")
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) Get(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	campaign, err := h.campaignUsecase.Get(ctx.Request.Context(), sess, ctx.Param("id"))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) List(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	campaigns, err := h.campaignUsecase.ListForUser(ctx.Request.Context(), sess)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

func (h *CampaignHandler) VideoPreview(ctx *gin.Context) {
	url := ctx.Query("url")
	if url == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}
	meta, err := h.campaignUsecase.VideoPreview(ctx.Request.Context(), url)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, meta)
}

func (h *CampaignHandler) Analytics(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	id := ctx.Param("id")
	snapshots, err := h.analyticsUsecase.ListByCampaign(ctx.Request.Context(), sess, id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campaign_id": id, "analytics": snapshots})
}
