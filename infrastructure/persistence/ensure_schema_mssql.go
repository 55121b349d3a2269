package persistence

import (
	"database/sql"
	"fmt"
)

// EnsureSchemaMSSQL creates the core tables on SQL Server if absent.
func EnsureSchemaMSSQL(db *sql.DB) error {
	ddls := []string{
		`IF OBJECT_ID('dbo.profiles', 'U') IS NULL
		CREATE TABLE dbo.[profiles] (
			id UNIQUEIDENTIFIER PRIMARY KEY,
			email NVARCHAR(320) NOT NULL UNIQUE,
			full_name NVARCHAR(200) NOT NULL DEFAULT '',
			password NVARCHAR(128) NOT NULL,
			role NVARCHAR(20) NOT NULL DEFAULT 'user',
			created_at DATETIME2 NOT NULL,
			updated_at DATETIME2 NOT NULL
		)`,
		`IF OBJECT_ID('dbo.campaigns', 'U') IS NULL
		CREATE TABLE dbo.[campaigns] (
			id UNIQUEIDENTIFIER PRIMARY KEY,
			user_id UNIQUEIDENTIFIER NOT NULL,
			title NVARCHAR(300) NOT NULL,
			youtube_video_url NVARCHAR(500) NOT NULL,
			target_views BIGINT NOT NULL,
			budget DECIMAL(12,2) NOT NULL,
			target_audience NVARCHAR(MAX) NULL,
			campaign_duration INT NOT NULL DEFAULT 30,
			status NVARCHAR(20) NOT NULL DEFAULT 'pending',
			current_views BIGINT NOT NULL DEFAULT 0,
			created_at DATETIME2 NOT NULL,
			updated_at DATETIME2 NOT NULL
		)`,
		`IF OBJECT_ID('dbo.payments', 'U') IS NULL
		CREATE TABLE dbo.[payments] (
			id UNIQUEIDENTIFIER PRIMARY KEY,
			campaign_id UNIQUEIDENTIFIER NOT NULL,
			user_id UNIQUEIDENTIFIER NOT NULL,
			amount DECIMAL(12,2) NOT NULL,
			status NVARCHAR(20) NOT NULL DEFAULT 'pending',
			provider NVARCHAR(20) NOT NULL,
			provider_order_id NVARCHAR(200) NOT NULL,
			created_at DATETIME2 NOT NULL,
			updated_at DATETIME2 NOT NULL,
			CONSTRAINT ux_payments_provider_order UNIQUE (provider, provider_order_id)
		)`,
	}
	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("ensure mssql schema: %w", err)
		}
	}
	return nil
}
