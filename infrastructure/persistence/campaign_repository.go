package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
)

const campaignColumns = `id, user_id, title, youtube_video_url, target_views, budget, target_audience, campaign_duration, status, current_views, created_at, updated_at`

// CampaignRepository implements campaign persistence using PostgreSQL.
type CampaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository { return &CampaignRepository{db: db} }

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	q := `INSERT INTO campaigns (` + campaignColumns + `)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err := r.db.ExecContext(ctx, q,
		c.ID, c.UserID, c.Title, c.YouTubeVideoURL, c.TargetViews, c.Budget,
		c.TargetAudience, c.CampaignDuration, string(c.Status), c.CurrentViews,
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

func (r *CampaignRepository) Update(ctx context.Context, c *model.Campaign) error {
	q := `UPDATE campaigns SET title=$1, youtube_video_url=$2, target_views=$3, budget=$4,
	      target_audience=$5, campaign_duration=$6, updated_at=$7 WHERE id=$8`
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

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status model.CampaignStatus, allowedFrom []model.CampaignStatus) (int64, error) {
	now := time.Now().UTC()
	if len(allowedFrom) == 0 {
		res, err := r.db.ExecContext(ctx,
			`UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3`,
			string(status), now, id)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
	from := make([]string, 0, len(allowedFrom))
	for _, s := range allowedFrom {
		from = append(from, string(s))
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3 AND status = ANY($4)`,
		string(status), now, id, pq.Array(from))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CampaignRepository) UpdateCurrentViews(ctx context.Context, id string, views int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET current_views=$1, updated_at=$2 WHERE id=$3`,
		views, time.Now().UTC(), id)
	return err
}

func (r *CampaignRepository) ListByUser(ctx context.Context, userID string) ([]*model.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCampaigns(rows)
}

func (r *CampaignRepository) ListAll(ctx context.Context) ([]*model.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCampaigns(rows)
}

func (r *CampaignRepository) ListByStatus(ctx context.Context, status model.CampaignStatus, limit int) ([]*model.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE status = $1 ORDER BY created_at DESC LIMIT $2`,
		string(status), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCampaigns(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*model.Campaign, error) {
	c := &model.Campaign{}
	var audience sql.NullString
	var status string
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.YouTubeVideoURL, &c.TargetViews,
		&c.Budget, &audience, &c.CampaignDuration, &status, &c.CurrentViews,
		&c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if audience.Valid {
		c.TargetAudience = &audience.String
	}
	c.Status = model.CampaignStatus(status)
	return c, nil
}

func scanCampaigns(rows *sql.Rows) ([]*model.Campaign, error) {
	var list []*model.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
