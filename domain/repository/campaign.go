package repository

import (
	"context"

	"swishview/domain/model"
)

type ICampaign interface {
	Create(ctx context.Context, campaign *model.Campaign) error
	GetByID(ctx context.Context, id string) (*model.Campaign, error)
	Update(ctx context.Context, campaign *model.Campaign) error
	// UpdateStatus sets status only when the row is currently in one of
	// allowedFrom; with an empty allowedFrom the write is unconditional
	// (admin override). Returns the number of rows updated.
	UpdateStatus(ctx context.Context, id string, status model.CampaignStatus, allowedFrom []model.CampaignStatus) (int64, error)
	UpdateCurrentViews(ctx context.Context, id string, views int64) error
	ListByUser(ctx context.Context, userID string) ([]*model.Campaign, error)
	ListAll(ctx context.Context) ([]*model.Campaign, error)
	ListByStatus(ctx context.Context, status model.CampaignStatus, limit int) ([]*model.Campaign, error)
}
