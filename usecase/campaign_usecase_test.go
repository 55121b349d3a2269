package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"swishview/domain/dto"
	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/infrastructure/cache"
	"swishview/usecase"
)

type MockYouTube struct {
	mock.Mock
}

func (m *MockYouTube) GetVideo(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoMetadata), args.Error(1)
}

func TestDeriveBudgetFromViews(t *testing.T) {
	assert.Equal(t, 200.00, usecase.DeriveBudgetFromViews(10000))
	assert.Equal(t, 0.02, usecase.DeriveBudgetFromViews(1))
	assert.Equal(t, 1000.00, usecase.DeriveBudgetFromViews(50000))
}

func TestDeriveViewsFromBudget(t *testing.T) {
	assert.Equal(t, int64(10000), usecase.DeriveViewsFromBudget(200.00))
	assert.Equal(t, int64(50), usecase.DeriveViewsFromBudget(1.00))
}

func TestCampaignUsecase_Create(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	campaignRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Campaign) bool {
		return c.UserID == "user-1" &&
			c.Status == model.CampaignStatusPending &&
			c.TargetViews == 10000 &&
			c.Budget == 200.00 &&
			c.ID != ""
	})).Return(nil).Once()

	uc := usecase.NewCampaignUsecase(campaignRepo, cache.NewVideoCache(nil), nil)
	campaign, err := uc.Create(context.Background(), ownerSession(), dto.CampaignReq{
		Title:           "Launch video",
		YouTubeVideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		TargetViews:     10000,
	})

	require.NoError(t, err)
	// Budget derived from views at the fixed rate.
	assert.Equal(t, 200.00, campaign.Budget)
	campaignRepo.AssertExpectations(t)
}

func TestCampaignUsecase_Create_Draft(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	campaignRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Campaign) bool {
		return c.Status == model.CampaignStatusDraft
	})).Return(nil).Once()

	uc := usecase.NewCampaignUsecase(campaignRepo, cache.NewVideoCache(nil), nil)
	_, err := uc.Create(context.Background(), ownerSession(), dto.CampaignReq{
		Title:           "Draft campaign",
		YouTubeVideoURL: "https://youtu.be/abc123XYZ_-",
		Budget:          50.00,
		Draft:           true,
	})

	require.NoError(t, err)
	campaignRepo.AssertExpectations(t)
}

func TestCampaignUsecase_Create_InvalidURL(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)

	uc := usecase.NewCampaignUsecase(campaignRepo, cache.NewVideoCache(nil), nil)
	_, err := uc.Create(context.Background(), ownerSession(), dto.CampaignReq{
		Title:           "Bad URL",
		YouTubeVideoURL: "https://vimeo.com/12345",
		TargetViews:     1000,
	})

	assert.True(t, domainerrors.IsValidation(err))
	campaignRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCampaignUsecase_Create_MissingViewsAndBudget(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)

	uc := usecase.NewCampaignUsecase(campaignRepo, cache.NewVideoCache(nil), nil)
	_, err := uc.Create(context.Background(), ownerSession(), dto.CampaignReq{
		Title:           "Empty goals",
		YouTubeVideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})

	assert.True(t, domainerrors.IsValidation(err))
}

func TestCampaignUsecase_Update_NotOwner(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	campaignRepo.On("GetByID", mock.Anything, "camp-1").Return(pendingCampaign(), nil).Once()

	uc := usecase.NewCampaignUsecase(campaignRepo, cache.NewVideoCache(nil), nil)
	_, err := uc.Update(context.Background(), model.Session{UserID: "intruder"}, "camp-1", dto.CampaignReq{
		Title:           "Hijack",
		YouTubeVideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		TargetViews:     1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	campaignRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCampaignUsecase_Get_AdminCanReadAny(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	campaignRepo.On("GetByID", mock.Anything, "camp-1").Return(pendingCampaign(), nil).Twice()

	uc := usecase.NewCampaignUsecase(campaignRepo, cache.NewVideoCache(nil), nil)

	_, err := uc.Get(context.Background(), model.Session{UserID: "admin-1", Role: model.RoleAdmin}, "camp-1")
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), model.Session{UserID: "stranger", Role: model.RoleUser}, "camp-1")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCampaignUsecase_VideoPreview(t *testing.T) {
	yt := new(MockYouTube)
	yt.On("GetVideo", mock.Anything, "dQw4w9WgXcQ").Return(&model.VideoMetadata{
		VideoID:   "dQw4w9WgXcQ",
		Title:     "Never Gonna Give You Up",
		ViewCount: 1000000,
	}, nil).Once()

	uc := usecase.NewCampaignUsecase(new(MockCampaignRepo), cache.NewVideoCache(nil), yt)
	meta, err := uc.VideoPreview(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "Never Gonna Give You Up", meta.Title)
	yt.AssertExpectations(t)
}

func TestCampaignUsecase_VideoPreview_NoClientFallback(t *testing.T) {
	uc := usecase.NewCampaignUsecase(new(MockCampaignRepo), cache.NewVideoCache(nil), nil)
	meta, err := uc.VideoPreview(context.Background(), "https://www.youtube.com/embed/abc123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", meta.VideoID)
	assert.Contains(t, meta.ThumbnailURL, "abc123")
}

func TestCampaignUsecase_VideoPreview_BadURL(t *testing.T) {
	uc := usecase.NewCampaignUsecase(new(MockCampaignRepo), cache.NewVideoCache(nil), nil)
	_, err := uc.VideoPreview(context.Background(), "not a url")

	assert.True(t, domainerrors.IsValidation(err))
}
