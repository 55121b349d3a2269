package persistence

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/microsoft/go-mssqldb"

	"swishview/infrastructure/configuration"
)

// NewMSSQLDB creates a sql.DB for Azure SQL / SQL Server using native database/sql.
func NewMSSQLDB() (*sql.DB, error) {
	cfg := configuration.C.Database.Mssql

	q := url.Values{}
	if cfg.Name != "" {
		q.Set("database", cfg.Name)
	}
	// Azure SQL requires encrypt=true; local containers get a self-signed cert.
	q.Set("encrypt", "true")
	if cfg.Host == "localhost" || cfg.Host == "127.0.0.1" {
		q.Set("TrustServerCertificate", "true")
	}

	u := &url.URL{Scheme: "sqlserver", Host: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)}
	if cfg.User != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.User, cfg.Password)
		} else {
			u.User = url.User(cfg.User)
		}
	}
	u.RawQuery = q.Encode()

	db, err := sql.Open("sqlserver", u.String())
	if err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
