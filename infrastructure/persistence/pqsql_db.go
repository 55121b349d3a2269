package persistence

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"swishview/infrastructure/configuration"
)

// NewPostgreSQLDB opens the primary PostgreSQL database using lib/pq.
func NewPostgreSQLDB() (*sql.DB, error) {
	cfg := configuration.C.Database.Psql
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(50)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
