package persistence

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
)

const paymentColumns = `id, campaign_id, user_id, amount, status, provider, provider_order_id, created_at, updated_at`

// PaymentRepository implements payment persistence using PostgreSQL. The
// orchestrator is the only writer of this table.
type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	q := `INSERT INTO payments (` + paymentColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.CampaignID, p.UserID, p.Amount, string(p.Status),
		p.Provider, p.ProviderOrderID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		// 23505 = unique_violation on (provider, provider_order_id)
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domainerrors.ErrDuplicatePayment
		}
		return err
	}
	return nil
}

func (r *PaymentRepository) GetByProviderOrder(ctx context.Context, provider, orderID string) (*model.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE provider = $1 AND provider_order_id = $2`,
		provider, orderID)
	return scanPayment(row)
}

func (r *PaymentRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE campaign_id = $1 ORDER BY created_at DESC`,
		campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(amount) FROM payments WHERE status = 'completed'`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func scanPayment(row rowScanner) (*model.Payment, error) {
	p := &model.Payment{}
	var status string
	err := row.Scan(&p.ID, &p.CampaignID, &p.UserID, &p.Amount, &status,
		&p.Provider, &p.ProviderOrderID, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Status = model.PaymentStatus(status)
	return p, nil
}
