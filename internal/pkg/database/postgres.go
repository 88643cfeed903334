package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// NewPostgresDB opens and configures the PostgreSQL connection pool.
func NewPostgresDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB connection: %w", err)
	}

	// Verify credentials and reachability before handing the pool out.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed initial DB ping: %w", err)
	}

	// Pool sizing. Bounded so a burst of stock/destock requests queues on
	// the pool instead of exhausting the database server.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}
