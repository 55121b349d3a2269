package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/usecase"
)

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, p *model.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepo) SetRole(ctx context.Context, id string, role model.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockProfileRepo) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) Append(ctx context.Context, s *model.CampaignAnalytics) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockAnalyticsRepo) ListByCampaign(ctx context.Context, campaignID string, limit int) ([]*model.CampaignAnalytics, error) {
	args := m.Called(ctx, campaignID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CampaignAnalytics), args.Error(1)
}

func (m *MockAnalyticsRepo) Totals(ctx context.Context) (int64, int64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Get(2).(float64), args.Error(3)
}

type MockAudit struct {
	mock.Mock
}

func (m *MockAudit) Record(ctx context.Context, audit *model.AdminAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func adminSession() model.Session {
	return model.Session{UserID: "admin-1", Email: "admin@swishview.com", Role: model.RoleAdmin}
}

func TestAdminUsecase_SetCampaignStatus(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	audit := new(MockAudit)

	// The admin override is unconditional: no allowed-from states.
	campaignRepo.On("UpdateStatus", mock.Anything, "camp-1", model.CampaignStatusCancelled,
		[]model.CampaignStatus(nil)).Return(int64(1), nil).Once()
	audit.On("Record", mock.Anything, mock.MatchedBy(func(a *model.AdminAudit) bool {
		return a.Action == "set_campaign_status" && a.TargetID == "camp-1"
	})).Return(nil).Once()

	uc := usecase.NewAdminUsecase(campaignRepo, new(MockPaymentRepo), new(MockProfileRepo), new(MockAnalyticsRepo), audit)
	err := uc.SetCampaignStatus(context.Background(), adminSession(), "camp-1", "cancelled")

	require.NoError(t, err)
	campaignRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestAdminUsecase_SetCampaignStatus_NotAdmin(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)

	uc := usecase.NewAdminUsecase(campaignRepo, new(MockPaymentRepo), new(MockProfileRepo), new(MockAnalyticsRepo), nil)
	err := uc.SetCampaignStatus(context.Background(), ownerSession(), "camp-1", "active")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	campaignRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUsecase_SetCampaignStatus_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminUsecase(new(MockCampaignRepo), new(MockPaymentRepo), new(MockProfileRepo), new(MockAnalyticsRepo), nil)
	err := uc.SetCampaignStatus(context.Background(), adminSession(), "camp-1", "bogus")

	assert.True(t, domainerrors.IsValidation(err))
}

func TestAdminUsecase_SetCampaignStatus_NotFound(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	campaignRepo.On("UpdateStatus", mock.Anything, "missing", model.CampaignStatusPaused,
		[]model.CampaignStatus(nil)).Return(int64(0), nil).Once()

	uc := usecase.NewAdminUsecase(campaignRepo, new(MockPaymentRepo), new(MockProfileRepo), new(MockAnalyticsRepo), nil)
	err := uc.SetCampaignStatus(context.Background(), adminSession(), "missing", "paused")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminUsecase_PromoteToAdmin(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	audit := new(MockAudit)

	profileRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(&model.Profile{
		ID:    "user-2",
		Email: "user@example.com",
		Role:  model.RoleUser,
	}, nil).Once()
	profileRepo.On("SetRole", mock.Anything, "user-2", model.RoleAdmin).Return(nil).Once()
	audit.On("Record", mock.Anything, mock.MatchedBy(func(a *model.AdminAudit) bool {
		return a.Action == "promote_to_admin" && a.TargetID == "user-2"
	})).Return(nil).Once()

	uc := usecase.NewAdminUsecase(new(MockCampaignRepo), new(MockPaymentRepo), profileRepo, new(MockAnalyticsRepo), audit)
	err := uc.PromoteToAdmin(context.Background(), adminSession(), "user@example.com")

	require.NoError(t, err)
	profileRepo.AssertExpectations(t)
}

func TestAdminUsecase_PromoteToAdmin_UnknownEmail(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	profileRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, domainerrors.ErrNotFound).Once()

	uc := usecase.NewAdminUsecase(new(MockCampaignRepo), new(MockPaymentRepo), profileRepo, new(MockAnalyticsRepo), nil)
	err := uc.PromoteToAdmin(context.Background(), adminSession(), "nobody@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	profileRepo.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUsecase_Stats(t *testing.T) {
	campaignRepo := new(MockCampaignRepo)
	paymentRepo := new(MockPaymentRepo)
	profileRepo := new(MockProfileRepo)
	analyticsRepo := new(MockAnalyticsRepo)

	active := pendingCampaign()
	active.Status = model.CampaignStatusActive
	campaignRepo.On("ListAll", mock.Anything).Return([]*model.Campaign{active, pendingCampaign()}, nil).Once()
	profileRepo.On("CountUsers", mock.Anything).Return(int64(42), nil).Once()
	paymentRepo.On("TotalRevenue", mock.Anything).Return(650.50, nil).Once()
	analyticsRepo.On("Totals", mock.Anything).Return(int64(120000), int64(3400), 4.257, nil).Once()

	uc := usecase.NewAdminUsecase(campaignRepo, paymentRepo, profileRepo, analyticsRepo, nil)
	stats, err := uc.Stats(context.Background(), adminSession())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCampaigns)
	assert.Equal(t, int64(1), stats.ActiveCampaigns)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, 650.50, stats.TotalRevenue)
	assert.Equal(t, int64(120000), stats.TotalViews)
	assert.Equal(t, 4.26, stats.AvgEngagementRate)
}

func TestAdminUsecase_Stats_NotAdmin(t *testing.T) {
	uc := usecase.NewAdminUsecase(new(MockCampaignRepo), new(MockPaymentRepo), new(MockProfileRepo), new(MockAnalyticsRepo), nil)
	_, err := uc.Stats(context.Background(), ownerSession())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
