package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/config"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
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
		&models.Artist{},
		&models.Client{},
		&models.AvailabilityWindow{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	installExclusionConstraint(db)

	return db
}

// installExclusionConstraint instala o cerco final contra double
// booking no próprio banco: dois agendamentos ativos do mesmo artista
// nunca podem cruzar intervalo, nem sob corrida de transações. A
// violação chega ao repositório como SQLSTATE 23P01.
func installExclusionConstraint(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to enable btree_gist: %v", err)
	}

	err := db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
            ) THEN
                ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_overlap
                EXCLUDE USING gist (
                    artist_id WITH =,
                    tstzrange(start_time, end_time) WITH &&
                )
                WHERE (status IN ('scheduled', 'confirmed'));
            END IF;
        END
        $$;
    `).Error
	if err != nil {
		log.Fatalf("failed to install exclusion constraint: %v", err)
	}
}
