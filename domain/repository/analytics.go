package repository

import (
	"context"

	"swishview/domain/model"
)

// IAnalytics stores append-only campaign performance snapshots.
type IAnalytics interface {
	Append(ctx context.Context, snapshot *model.CampaignAnalytics) error
	ListByCampaign(ctx context.Context, campaignID string, limit int) ([]*model.CampaignAnalytics, error)
	// Totals aggregates views, clicks and average engagement across all
	// snapshots. Pure read-side computation, recomputed per request.
	Totals(ctx context.Context) (views int64, clicks int64, avgEngagement float64, err error)
}

// IAdminAudit records privileged operations. Optional; a nil implementation
// is tolerated by callers.
type IAdminAudit interface {
	Record(ctx context.Context, audit *model.AdminAudit) error
}
