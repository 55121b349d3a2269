package persistence

import (
	"context"
	"database/sql"

	"swishview/domain/model"
)

// AnalyticsRepository stores append-only campaign performance snapshots
// (PostgreSQL only for now).
type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository { return &AnalyticsRepository{db: db} }

func (r *AnalyticsRepository) Append(ctx context.Context, s *model.CampaignAnalytics) error {
	q := `INSERT INTO campaign_analytics (campaign_id, views_count, clicks_count, engagement_rate, recorded_at)
	      VALUES ($1,$2,$3,$4,$5)`
	_, err := r.db.ExecContext(ctx, q,
		s.CampaignID, s.ViewsCount, s.ClicksCount, s.EngagementRate, s.RecordedAt)
	return err
}

func (r *AnalyticsRepository) ListByCampaign(ctx context.Context, campaignID string, limit int) ([]*model.CampaignAnalytics, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, campaign_id, views_count, clicks_count, engagement_rate, recorded_at
		 FROM campaign_analytics WHERE campaign_id = $1 ORDER BY recorded_at DESC LIMIT $2`,
		campaignID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*model.CampaignAnalytics
	for rows.Next() {
		s := &model.CampaignAnalytics{}
		if err := rows.Scan(&s.ID, &s.CampaignID, &s.ViewsCount, &s.ClicksCount, &s.EngagementRate, &s.RecordedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepository) Totals(ctx context.Context) (int64, int64, float64, error) {
	var views, clicks sql.NullInt64
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(views_count), SUM(clicks_count), AVG(engagement_rate) FROM campaign_analytics`).
		Scan(&views, &clicks, &avg)
	if err != nil {
		return 0, 0, 0, err
	}
	return views.Int64, clicks.Int64, avg.Float64, nil
}
