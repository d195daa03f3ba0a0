package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/utpgestion/academico/internal/config"
)

// MySQLDB wraps the course store connection pool.
type MySQLDB struct {
	DB *sql.DB
}

// NewMySQLDB opens the course store. Connect, read and write timeouts are
// carried in the DSN so every query inherits them.
func NewMySQLDB(cfg *config.Config) (*MySQLDB, error) {
	sqlDB, err := sql.Open("mysql", cfg.GetMySQLDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to establish mysql connection: %w", err)
	}

	return &MySQLDB{DB: sqlDB}, nil
}

// Close closes the connection pool
func (m *MySQLDB) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}
