package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
)

func samplePayment() *model.Payment {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &model.Payment{
		ID:              "pay-1",
		CampaignID:      "camp-1",
		UserID:          "user-1",
		Amount:          200.00,
		Status:          model.PaymentStatusCompleted,
		Provider:        "stripe",
		ProviderOrderID: "cs_123",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPaymentRepository(db)
	p := samplePayment()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO payments (`+paymentColumns+`)`)).
		WithArgs(p.ID, p.CampaignID, p.UserID, p.Amount, string(p.Status),
			p.Provider, p.ProviderOrderID, p.CreatedAt, p.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repository.Create(context.Background(), p))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Create_DuplicateOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPaymentRepository(db)
	p := samplePayment()

	// 23505 from the unique index on (provider, provider_order_id).
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO payments (`+paymentColumns+`)`)).
		WithArgs(p.ID, p.CampaignID, p.UserID, p.Amount, string(p.Status),
			p.Provider, p.ProviderOrderID, p.CreatedAt, p.UpdatedAt).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "ux_payments_provider_order"})

	err = repository.Create(context.Background(), p)
	require.ErrorIs(t, err, domainerrors.ErrDuplicatePayment)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_GetByProviderOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPaymentRepository(db)
	p := samplePayment()

	rows := sqlmock.NewRows([]string{
		"id", "campaign_id", "user_id", "amount", "status",
		"provider", "provider_order_id", "created_at", "updated_at",
	}).AddRow(p.ID, p.CampaignID, p.UserID, p.Amount, string(p.Status),
		p.Provider, p.ProviderOrderID, p.CreatedAt, p.UpdatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+paymentColumns+` FROM payments WHERE provider = $1 AND provider_order_id = $2`)).
		WithArgs("stripe", "cs_123").
		WillReturnRows(rows)

	res, err := repository.GetByProviderOrder(context.Background(), "stripe", "cs_123")
	require.NoError(t, err)
	require.Equal(t, p, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_TotalRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPaymentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT SUM(amount) FROM payments WHERE status = 'completed'`)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(650.50))

	total, err := repository.TotalRevenue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 650.50, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_TotalRevenue_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPaymentRepository(db)

	// SUM over an empty table is NULL.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT SUM(amount) FROM payments WHERE status = 'completed'`)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

	total, err := repository.TotalRevenue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.0, total)
	require.NoError(t, mock.ExpectationsWereMet())
}
