package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/consultation-scheduler/internal/config"
	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/models"
)

func NewDB(cfg *config.Config, catalog appointment.Catalog) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Office{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := SeedOffices(db, catalog); err != nil {
		log.Fatalf("failed to seed offices: %v", err)
	}

	return db
}

// SeedOffices upserts the catalog offices so appointment rows can reference
// them.
func SeedOffices(db *gorm.DB, catalog appointment.Catalog) error {
	if len(catalog.Offices) == 0 {
		return nil
	}

	rows := make([]models.Office, 0, len(catalog.Offices))
	for _, o := range catalog.Offices {
		rows = append(rows, models.Office{ID: o.ID, Name: o.Name})
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&rows).Error
}
