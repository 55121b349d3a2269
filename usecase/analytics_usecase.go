package usecase

import (
	"context"
	"time"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/cache"
	"swishview/infrastructure/logger"
	"swishview/infrastructure/utils"
)

type IAnalyticsUsecase interface {
	ListByCampaign(ctx context.Context, sess model.Session, campaignID string) ([]*model.CampaignAnalytics, error)
	SyncActive(ctx context.Context, batchSize int) error
}

type analyticsUsecase struct {
	campaignRepo  repository.ICampaign
	analyticsRepo repository.IAnalytics
	videoCache    *cache.VideoCache
	youtube       repository.IYouTube
}

func NewAnalyticsUsecase(campaignRepo repository.ICampaign, analyticsRepo repository.IAnalytics, videoCache *cache.VideoCache, youtube repository.IYouTube) IAnalyticsUsecase {
	return &analyticsUsecase{
		campaignRepo:  campaignRepo,
		analyticsRepo: analyticsRepo,
		videoCache:    videoCache,
		youtube:       youtube,
	}
}

func (u *analyticsUsecase) ListByCampaign(ctx context.Context, sess model.Session, campaignID string) ([]*model.CampaignAnalytics, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != sess.UserID && !sess.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized
	}
	return u.analyticsRepo.ListByCampaign(ctx, campaignID, 100)
}

func (u *analyticsUsecase) SyncActive(ctx context.Context, batchSize int) error {
	return SyncCampaignAnalytics(ctx, u.campaignRepo, u.analyticsRepo, u.videoCache, u.youtube, batchSize)
}

// SyncCampaignAnalytics refreshes view counts for active campaigns from the
// YouTube Data API and appends an analytics snapshot per campaign. Campaigns
// whose video lookup fails are skipped, not retried within the batch.
func SyncCampaignAnalytics(ctx context.Context, campaignRepo repository.ICampaign, analyticsRepo repository.IAnalytics, videoCache *cache.VideoCache, yt repository.IYouTube, batchSize int) error {
	lg := logger.GetLogger()
	if yt == nil {
		lg.Debug("analytics sync skipped, no video client configured")
		return nil
	}
	campaigns, err := campaignRepo.ListByStatus(ctx, model.CampaignStatusActive, batchSize)
	if err != nil {
		return err
	}
	for _, campaign := range campaigns {
		videoID := utils.ExtractVideoID(campaign.YouTubeVideoURL)
		if videoID == "" {
			lg.WithField("campaign_id", campaign.ID).Warn("active campaign has unparseable video URL")
			continue
		}
		meta, err := lookupVideo(ctx, videoCache, yt, videoID)
		if err != nil {
			lg.WithField("campaign_id", campaign.ID).WithField("error", err).Warn("video lookup failed during analytics sync")
			continue
		}
		if err := campaignRepo.UpdateCurrentViews(ctx, campaign.ID, meta.ViewCount); err != nil {
			lg.WithField("campaign_id", campaign.ID).WithField("error", err).Error("failed updating current views")
			continue
		}
		snapshot := &model.CampaignAnalytics{
			CampaignID:     campaign.ID,
			ViewsCount:     meta.ViewCount,
			EngagementRate: engagementRate(meta.ViewCount, meta.LikeCount),
			RecordedAt:     utils.GetCurrentTime(),
		}
		if err := analyticsRepo.Append(ctx, snapshot); err != nil {
			lg.WithField("campaign_id", campaign.ID).WithField("error", err).Error("failed appending analytics snapshot")
		}
	}
	return nil
}

func lookupVideo(ctx context.Context, videoCache *cache.VideoCache, yt repository.IYouTube, videoID string) (*model.VideoMetadata, error) {
	if meta, err := videoCache.Get(ctx, videoID); err == nil && meta != nil {
		return meta, nil
	}
	lookupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	meta, err := yt.GetVideo(lookupCtx, videoID)
	if err != nil {
		return nil, err
	}
	_ = videoCache.Set(ctx, meta)
	return meta, nil
}

func engagementRate(views, likes int64) float64 {
	if views <= 0 {
		return 0
	}
	return utils.Round2(float64(likes) / float64(views) * 100)
}
