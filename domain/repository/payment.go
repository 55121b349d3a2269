package repository

import (
	"context"

	"swishview/domain/model"
)

type IPayment interface {
	// Create inserts a payment row. A second insert for the same
	// (provider, provider_order_id) returns domain errors.ErrDuplicatePayment.
	Create(ctx context.Context, payment *model.Payment) error
	GetByProviderOrder(ctx context.Context, provider, orderID string) (*model.Payment, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.Payment, error)
	TotalRevenue(ctx context.Context) (float64, error)
}
