package persistence

import (
	"context"
	"database/sql"

	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/logger"
)

// AnalyticsRepositoryMSSQL is the SQL Server implementation of IAnalytics.
type AnalyticsRepositoryMSSQL struct{ db *sql.DB }

func NewAnalyticsRepositoryMSSQL(db *sql.DB) repository.IAnalytics {
	return &AnalyticsRepositoryMSSQL{db}
}

func (r *AnalyticsRepositoryMSSQL) Append(ctx context.Context, s *model.CampaignAnalytics) error {
	q := `INSERT INTO dbo.[campaign_analytics] (campaign_id, views_count, clicks_count, engagement_rate, recorded_at)
	      VALUES (@p1,@p2,@p3,@p4,@p5)`
	_, err := r.db.ExecContext(ctx, q,
		s.CampaignID, s.ViewsCount, s.ClicksCount, s.EngagementRate, s.RecordedAt)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mssql: append analytics snapshot failed")
	}
	return err
}

func (r *AnalyticsRepositoryMSSQL) ListByCampaign(ctx context.Context, campaignID string, limit int) ([]*model.CampaignAnalytics, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT TOP (@p2) id, campaign_id, views_count, clicks_count, engagement_rate, recorded_at
		 FROM dbo.[campaign_analytics] WHERE campaign_id = @p1 ORDER BY recorded_at DESC`,
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

func (r *AnalyticsRepositoryMSSQL) Totals(ctx context.Context) (int64, int64, float64, error) {
	var views, clicks sql.NullInt64
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(views_count), SUM(clicks_count), AVG(engagement_rate) FROM dbo.[campaign_analytics]`).
		Scan(&views, &clicks, &avg)
	if err != nil {
		return 0, 0, 0, err
	}
	return views.Int64, clicks.Int64, avg.Float64, nil
}
