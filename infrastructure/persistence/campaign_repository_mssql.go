package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/logger"
)

// CampaignRepositoryMSSQL is the SQL Server implementation of ICampaign,
// used when the service runs against Azure SQL in production.
type CampaignRepositoryMSSQL struct{ db *sql.DB }

func NewCampaignRepositoryMSSQL(db *sql.DB) repository.ICampaign {
	return &CampaignRepositoryMSSQL{db}
}

func (r *CampaignRepositoryMSSQL) Create(ctx context.Context, c *model.Campaign) error {
	q := `INSERT INTO dbo.[campaigns] (id, user_id, title, youtube_video_url, target_views, budget, target_audience, campaign_duration, status, current_views, created_at, updated_at)
	      VALUES (@p1,@p2,@p3,@p4,@p5,@p6,@p7,@p8,@p9,@p10,@p11,@p12)`
	_, err := r.db.ExecContext(ctx, q,
		c.ID, c.UserID, c.Title, c.YouTubeVideoURL, c.TargetViews, c.Budget,
		c.TargetAudience, c.CampaignDuration, string(c.Status), c.CurrentViews,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mssql: create campaign failed")
	}
	return err
}

func (r *CampaignRepositoryMSSQL) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM dbo.[campaigns] WHERE id = @p1`, id)
	return scanCampaign(row)
}

func (r *CampaignRepositoryMSSQL) Update(ctx context.Context, c *model.Campaign) error {
	q := `UPDATE dbo.[campaigns] SET title=@p1, youtube_video_url=@p2, target_views=@p3, budget=@p4,
	      target_audience=@p5, campaign_duration=@p6, updated_at=@p7 WHERE id=@p8`
	res, err := r.db.ExecContext(ctx, q,
		c.Title, c.YouTubeVideoURL, c.TargetViews, c.Budget,
		c.TargetAudience, c.CampaignDuration, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CampaignRepositoryMSSQL) UpdateStatus(ctx context.Context, id string, status model.CampaignStatus, allowedFrom []model.CampaignStatus) (int64, error) {
	now := time.Now().UTC()
	if len(allowedFrom) == 0 {
		res, err := r.db.ExecContext(ctx,
			`UPDATE dbo.[campaigns] SET status=@p1, updated_at=@p2 WHERE id=@p3`,
			string(status), now, id)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
	args := []interface{}{string(status), now, id}
	placeholders := make([]string, 0, len(allowedFrom))
	for i, s := range allowedFrom {
		placeholders = append(placeholders, fmt.Sprintf("@p%d", i+4))
		args = append(args, string(s))
	}
	q := `UPDATE dbo.[campaigns] SET status=@p1, updated_at=@p2 WHERE id=@p3 AND status IN (` +
		strings.Join(placeholders, ",") + `)`
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CampaignRepositoryMSSQL) UpdateCurrentViews(ctx context.Context, id string, views int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE dbo.[campaigns] SET current_views=@p1, updated_at=SYSDATETIME() WHERE id=@p2`,
		views, id)
	return err
}

func (r *CampaignRepositoryMSSQL) ListByUser(ctx context.Context, userID string) ([]*model.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+campaignColumns+` FROM dbo.[campaigns] WHERE user_id = @p1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCampaigns(rows)
}

func (r *CampaignRepositoryMSSQL) ListAll(ctx context.Context) ([]*model.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+campaignColumns+` FROM dbo.[campaigns] ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCampaigns(rows)
}

func (r *CampaignRepositoryMSSQL) ListByStatus(ctx context.Context, status model.CampaignStatus, limit int) ([]*model.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT TOP (@p2) `+campaignColumns+` FROM dbo.[campaigns] WHERE status = @p1 ORDER BY created_at DESC`,
		string(status), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCampaigns(rows)
}
