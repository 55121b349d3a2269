package usecase

import (
	"context"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/logger"
	"swishview/infrastructure/utils"
)

type IAdminUsecase interface {
	ListCampaigns(ctx context.Context, sess model.Session) ([]*model.Campaign, error)
	SetCampaignStatus(ctx context.Context, sess model.Session, campaignID, status string) error
	PromoteToAdmin(ctx context.Context, sess model.Session, email string) error
	Stats(ctx context.Context, sess model.Session) (*model.AdminStats, error)
	ListPayments(ctx context.Context, sess model.Session, campaignID string) ([]*model.Payment, error)
}

type adminUsecase struct {
	campaignRepo  repository.ICampaign
	paymentRepo   repository.IPayment
	profileRepo   repository.IProfile
	analyticsRepo repository.IAnalytics
	audit         repository.IAdminAudit
}

func NewAdminUsecase(
	campaignRepo repository.ICampaign,
	paymentRepo repository.IPayment,
	profileRepo repository.IProfile,
	analyticsRepo repository.IAnalytics,
	audit repository.IAdminAudit,
) IAdminUsecase {
	return &adminUsecase{
		campaignRepo:  campaignRepo,
		paymentRepo:   paymentRepo,
		profileRepo:   profileRepo,
		analyticsRepo: analyticsRepo,
		audit:         audit,
	}
}

func (u *adminUsecase) ListCampaigns(ctx context.Context, sess model.Session) ([]*model.Campaign, error) {
	if !sess.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized
	}
	return u.campaignRepo.ListAll(ctx)
}

// SetCampaignStatus is the unconditional override: unlike the payment path
// it may move a campaign between any two valid statuses.
func (u *adminUsecase) SetCampaignStatus(ctx context.Context, sess model.Session, campaignID, status string) error {
	if !sess.IsAdmin() {
		return domainerrors.ErrUnauthorized
	}
	if !model.IsValidCampaignStatus(model.CampaignStatus(status)) {
		return domainerrors.Validation("invalid campaign status %q", status)
	}
	affected, err := u.campaignRepo.UpdateStatus(ctx, campaignID, model.CampaignStatus(status), nil)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.ErrNotFound
	}
	u.record(ctx, sess, "set_campaign_status", campaignID, status)
	return nil
}

func (u *adminUsecase) PromoteToAdmin(ctx context.Context, sess model.Session, email string) error {
	if !sess.IsAdmin() {
		return domainerrors.ErrUnauthorized
	}
	profile, err := u.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := u.profileRepo.SetRole(ctx, profile.ID, model.RoleAdmin); err != nil {
		return err
	}
	u.record(ctx, sess, "promote_to_admin", profile.ID, email)
	return nil
}

func (u *adminUsecase) Stats(ctx context.Context, sess model.Session) (*model.AdminStats, error) {
	if !sess.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized
	}
	stats := &model.AdminStats{}

	campaigns, err := u.campaignRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCampaigns = int64(len(campaigns))
	for _, c := range campaigns {
		if c.Status == model.CampaignStatusActive {
			stats.ActiveCampaigns++
		}
	}

	if stats.TotalUsers, err = u.profileRepo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = u.paymentRepo.TotalRevenue(ctx); err != nil {
		return nil, err
	}
	views, clicks, engagement, err := u.analyticsRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalViews = views
	stats.TotalClicks = clicks
	stats.AvgEngagementRate = utils.Round2(engagement)
	return stats, nil
}

func (u *adminUsecase) ListPayments(ctx context.Context, sess model.Session, campaignID string) ([]*model.Payment, error) {
	if !sess.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized
	}
	return u.paymentRepo.ListByCampaign(ctx, campaignID)
}

func (u *adminUsecase) record(ctx context.Context, sess model.Session, action, targetID, detail string) {
	if u.audit == nil {
		return
	}
	err := u.audit.Record(ctx, &model.AdminAudit{
		AdminID:   sess.UserID,
		Action:    action,
		TargetID:  targetID,
		Detail:    detail,
		CreatedAt: utils.GetCurrentTime(),
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("action", action).Warn("failed writing admin audit record")
	}
}
