package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"swishview/domain/model"
	"swishview/infrastructure/cache"
	"swishview/usecase"
)

func TestSyncCampaignAnalytics(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	analyticsRepo := new(MockAnalyticsRepo)
	yt := new(MockYouTube)

	active := pendingCampaign()
	active.Status = model.CampaignStatusActive
	active.YouTubeVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	campaignRepo.On("ListByStatus", mock.Anything, model.CampaignStatusActive, 50).
		Return([]*model.Campaign{active}, nil).Once()
	yt.On("GetVideo", mock.Anything, "dQw4w9WgXcQ").Return(&model.VideoMetadata{
		VideoID:   "dQw4w9WgXcQ",
		ViewCount: 123456,
		LikeCount: 2469,
	}, nil).Once()
	campaignRepo.On("UpdateCurrentViews", mock.Anything, "camp-1", int64(123456)).Return(nil).Once()
	analyticsRepo.On("Append", mock.Anything, mock.MatchedBy(func(s *model.CampaignAnalytics) bool {
		return s.CampaignID == "camp-1" &&
			s.ViewsCount == 123456 &&
			s.EngagementRate == 2.0
	})).Return(nil).Once()

	err := usecase.SyncCampaignAnalytics(context.Background(), campaignRepo, analyticsRepo, cache.NewVideoCache(nil), yt, 50)

	require.NoError(t, err)
	campaignRepo.AssertExpectations(t)
	analyticsRepo.AssertExpectations(t)
	yt.AssertExpectations(t)
}

func TestSyncCampaignAnalytics_SkipsBadURL(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	analyticsRepo := new(MockAnalyticsRepo)
	yt := new(MockYouTube)

	broken := pendingCampaign()
	broken.Status = model.CampaignStatusActive
	broken.YouTubeVideoURL = "https://example.com/not-a-video"

	campaignRepo.On("ListByStatus", mock.Anything, model.CampaignStatusActive, 50).
		Return([]*model.Campaign{broken}, nil).Once()

	err := usecase.SyncCampaignAnalytics(context.Background(), campaignRepo, analyticsRepo, cache.NewVideoCache(nil), yt, 50)

	require.NoError(t, err)
	yt.AssertNotCalled(t, "GetVideo", mock.Anything, mock.Anything)
	analyticsRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSyncCampaignAnalytics_NoClient(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)

	err := usecase.SyncCampaignAnalytics(context.Background(), campaignRepo, new(MockAnalyticsRepo), cache.NewVideoCache(nil), nil, 50)

	require.NoError(t, err)
	campaignRepo.AssertNotCalled(t, "ListByStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsUsecase_ListByCampaign_OwnerOnly(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	analyticsRepo := new(MockAnalyticsRepo)

	campaignRepo.On("GetByID", mock.Anything, "camp-1").Return(pendingCampaign(), nil).Twice()
	analyticsRepo.On("ListByCampaign", mock.Anything, "camp-1", 100).
		Return([]*model.CampaignAnalytics{{CampaignID: "camp-1", ViewsCount: 10}}, nil).Once()

	uc := usecase.NewAnalyticsUsecase(campaignRepo, analyticsRepo, cache.NewVideoCache(nil), nil)

	list, err := uc.ListByCampaign(context.Background(), ownerSession(), "camp-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.ListByCampaign(context.Background(), model.Session{UserID: "stranger"}, "camp-1")
	assert.Error(t, err)
}
