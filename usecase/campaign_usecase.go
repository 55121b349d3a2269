package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"swishview/domain/dto"
	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/cache"
	"swishview/infrastructure/logger"
	"swishview/infrastructure/utils"
)

// ViewRate is the fixed conversion between budget and target views:
// $0.02 per view. Applied at create/edit time only; afterwards the two
// fields are independent and the last-edited one wins.
const ViewRate = 0.02

func DeriveBudgetFromViews(views int64) float64 {
	return utils.Round2(float64(views) * ViewRate)
}

func DeriveViewsFromBudget(budget float64) int64 {
	return int64(math.Round(budget / ViewRate))
}

type ICampaignUsecase interface {
	Create(ctx context.Context, sess model.Session, req dto.CampaignReq) (*model.Campaign, error)
	Update(ctx context.Context, sess model.Session, id string, req dto.CampaignReq) (*model.Campaign, error)
	Get(ctx context.Context, sess model.Session, id string) (*model.Campaign, error)
	ListForUser(ctx context.Context, sess model.Session) ([]*model.Campaign, error)
	VideoPreview(ctx context.Context, url string) (*model.VideoMetadata, error)
}

type campaignUsecase struct {
	campaignRepo repository.ICampaign
	videoCache   *cache.VideoCache
	youtube      repository.IYouTube // optional; nil when no API key configured
}

func NewCampaignUsecase(campaignRepo repository.ICampaign, videoCache *cache.VideoCache, youtube repository.IYouTube) ICampaignUsecase {
	return &campaignUsecase{campaignRepo: campaignRepo, videoCache: videoCache, youtube: youtube}
}

func (u *campaignUsecase) Create(ctx context.Context, sess model.Session, req dto.CampaignReq) (*model.Campaign, error) {
	if err := normalizeCampaignReq(&req); err != nil {
		return nil, err
	}
	now := utils.GetCurrentTime()
	status := model.CampaignStatusPending
	if req.Draft {
		status = model.CampaignStatusDraft
	}
	c := &model.Campaign{
		ID:               uuid.NewString(),
		UserID:           sess.UserID,
		Title:            req.Title,
		YouTubeVideoURL:  req.YouTubeVideoURL,
		TargetViews:      req.TargetViews,
		Budget:           req.Budget,
		CampaignDuration: req.CampaignDuration,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if audience := strings.TrimSpace(req.TargetAudience); audience != "" {
		c.TargetAudience = &audience
	}
	if err := u.campaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *campaignUsecase) Update(ctx context.Context, sess model.Session, id string, req dto.CampaignReq) (*model.Campaign, error) {
	existing, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != sess.UserID {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := normalizeCampaignReq(&req); err != nil {
		return nil, err
	}
	existing.Title = req.Title
	existing.YouTubeVideoURL = req.YouTubeVideoURL
	existing.TargetViews = req.TargetViews
	existing.Budget = req.Budget
	existing.CampaignDuration = req.CampaignDuration
	existing.TargetAudience = nil
	if audience := strings.TrimSpace(req.TargetAudience); audience != "" {
		existing.TargetAudience = &audience
	}
	existing.UpdatedAt = utils.GetCurrentTime()
	if err := u.campaignRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *campaignUsecase) Get(ctx context.Context, sess model.Session, id string) (*model.Campaign, error) {
	c, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != sess.UserID && !sess.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized
	}
	return c, nil
}

func (u *campaignUsecase) ListForUser(ctx context.Context, sess model.Session) ([]*model.Campaign, error) {
	return u.campaignRepo.ListByUser(ctx, sess.UserID)
}

// VideoPreview resolves a YouTube URL to its cached metadata; with no API
// client configured it degrades to the id plus the standard thumbnail URL.
func (u *campaignUsecase) VideoPreview(ctx context.Context, url string) (*model.VideoMetadata, error) {
	videoID := utils.ExtractVideoID(url)
	if videoID == "" {
		return nil, domainerrors.Validation("no video identifier found in URL")
	}
	if meta, err := u.videoCache.Get(ctx, videoID); err == nil && meta != nil {
		return meta, nil
	}
	if u.youtube == nil {
		return &model.VideoMetadata{VideoID: videoID, ThumbnailURL: utils.ThumbnailURL(videoID)}, nil
	}
	meta, err := u.youtube.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if cacheErr := u.videoCache.Set(ctx, meta); cacheErr != nil {
		logger.GetLogger().WithField("error", cacheErr).Warn("failed caching video metadata")
	}
	return meta, nil
}

// normalizeCampaignReq validates the request and keeps budget and target
// views mutually consistent: a missing counterpart is derived at the fixed
// rate, and both must end up positive.
func normalizeCampaignReq(req *dto.CampaignReq) error {
	if strings.TrimSpace(req.Title) == "" {
		return domainerrors.Validation("title is required")
	}
	if utils.ExtractVideoID(req.YouTubeVideoURL) == "" {
		return domainerrors.Validation("youtube_video_url is not a recognizable video URL")
	}
	if req.TargetViews < 0 || req.Budget < 0 {
		return domainerrors.Validation("target_views and budget must be positive")
	}
	switch {
	case req.TargetViews > 0 && req.Budget == 0:
		req.Budget = DeriveBudgetFromViews(req.TargetViews)
	case req.Budget > 0 && req.TargetViews == 0:
		req.TargetViews = DeriveViewsFromBudget(req.Budget)
	}
	if req.TargetViews <= 0 || req.Budget <= 0 {
		return domainerrors.Validation("target_views and budget must be positive")
	}
	if req.CampaignDuration <= 0 {
		req.CampaignDuration = 30
	}
	return nil
}
