package db

import (
	"fmt"

	"github.com/Furqanhalari/travel-goals/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB is the process-wide connection pool. It is assigned once by InitDB
// before the server starts accepting requests and closed on shutdown.
var DB *sqlx.DB

// InitDB opens the database connection and assigns it to the global DB variable.
func InitDB(connStr string) error {
	var err error

	logger.Log.Info("[db] Attempting to open database connection...")

	DB, err = sqlx.Open("postgres", connStr)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[db] Error opening database: %v", err))
		return fmt.Errorf("error opening database: %w", err)
	}

	// Connection pool tuning
	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)

	// Verify connection
	logger.Log.Info("[db] Pinging database to verify connection...")
	if err = DB.Ping(); err != nil {
		logger.Log.Error(fmt.Sprintf("[db] Failed to ping database: %v", err))
		return fmt.Errorf("error pinging database: %w", err)
	}

	logger.Log.Info("[db] Successfully connected to PostgreSQL!")
	return nil
}
