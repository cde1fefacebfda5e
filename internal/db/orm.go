package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openORM opens a gorm session with the shared configuration; schema
// tests reuse it against sqlite.
func openORM(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{})
}

// InitPostgresORM opens the gorm handle Migrate runs DDL on. Query
// traffic stays on the sqlx pool from InitPostgres.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	gdb, err := openORM(postgres.Open(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return gdb, nil
}
