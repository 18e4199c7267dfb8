package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"urbanflow/internal/models/db_models"
)

func InitPostgresql(dsn string) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Visit writes are single-row inserts; no wrapping transaction.
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := connectionPool.AutoMigrate(&db_models.Visit{}); err != nil {
		return nil, fmt.Errorf("migrate visited table: %w", err)
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
