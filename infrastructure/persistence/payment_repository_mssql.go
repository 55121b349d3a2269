package persistence

import (
	"context"
	"database/sql"

	mssql "github.com/microsoft/go-mssqldb"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/logger"
)

// PaymentRepositoryMSSQL is the SQL Server implementation of IPayment.
type PaymentRepositoryMSSQL struct{ db *sql.DB }

func NewPaymentRepositoryMSSQL(db *sql.DB) repository.IPayment {
	return &PaymentRepositoryMSSQL{db}
}

func (r *PaymentRepositoryMSSQL) Create(ctx context.Context, p *model.Payment) error {
	q := `INSERT INTO dbo.[payments] (id, campaign_id, user_id, amount, status, provider, provider_order_id, created_at, updated_at)
	      VALUES (@p1,@p2,@p3,@p4,@p5,@p6,@p7,@p8,@p9)`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.CampaignID, p.UserID, p.Amount, string(p.Status),
		p.Provider, p.ProviderOrderID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		// 2627/2601 = unique constraint violation on (provider, provider_order_id)
		if sqlErr, ok := err.(mssql.Error); ok && (sqlErr.Number == 2627 || sqlErr.Number == 2601) {
			return domainerrors.ErrDuplicatePayment
		}
		logger.GetLogger().WithField("error", err).Error("mssql: create payment failed")
		return err
	}
	return nil
}

func (r *PaymentRepositoryMSSQL) GetByProviderOrder(ctx context.Context, provider, orderID string) (*model.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM dbo.[payments] WHERE provider = @p1 AND provider_order_id = @p2`,
		provider, orderID)
	return scanPayment(row)
}

func (r *PaymentRepositoryMSSQL) ListByCampaign(ctx context.Context, campaignID string) ([]*model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM dbo.[payments] WHERE campaign_id = @p1 ORDER BY created_at DESC`,
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

func (r *PaymentRepositoryMSSQL) TotalRevenue(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(amount) FROM dbo.[payments] WHERE status = 'completed'`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
