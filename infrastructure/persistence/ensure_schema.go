package persistence

import (
	"database/sql"
	"fmt"

	"swishview/infrastructure/logger"
)

// EnsureSchema creates the campaign, payment, profile and analytics tables
// if they do not exist (PostgreSQL).
func EnsureSchema(db *sql.DB) error {
	ddls := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL DEFAULT '',
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS campaigns (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			title TEXT NOT NULL,
			youtube_video_url TEXT NOT NULL,
			target_views BIGINT NOT NULL,
			budget NUMERIC(12,2) NOT NULL,
			target_audience TEXT,
			campaign_duration INT NOT NULL DEFAULT 30,
			status TEXT NOT NULL DEFAULT 'pending',
			current_views BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			campaign_id UUID NOT NULL REFERENCES campaigns(id),
			user_id UUID NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			provider TEXT NOT NULL,
			provider_order_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS campaign_analytics (
			id BIGSERIAL PRIMARY KEY,
			campaign_id UUID NOT NULL REFERENCES campaigns(id),
			views_count BIGINT NOT NULL DEFAULT 0,
			clicks_count BIGINT NOT NULL DEFAULT 0,
			engagement_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			recorded_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	// Idempotency key for gateway confirmations: a replayed webhook or
	// redirect for the same order must not produce a second payment row.
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ux_payments_provider_order
		ON payments(provider, provider_order_id)`); err != nil {
		return fmt.Errorf("ensure payments idempotency index: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_campaigns_user_created
		ON campaigns(user_id, created_at DESC)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_campaigns_user_created")
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_campaign_analytics_campaign
		ON campaign_analytics(campaign_id, recorded_at DESC)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_campaign_analytics_campaign")
	}
	return nil
}
