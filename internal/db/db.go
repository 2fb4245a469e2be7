package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GORM mapeia time.Time para timestamptz, então o range da constraint
// precisa ser tstzrange.
const blockNoOverlapConstraintSQL = `
	DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint
			WHERE conname = 'calendar_blocks_no_overlap'
		) THEN
			ALTER TABLE calendar_blocks
				ADD CONSTRAINT calendar_blocks_no_overlap
				EXCLUDE USING gist (
					tstzrange(start_time, end_time) WITH &&
				) WHERE (active);
		END IF;
	END$$;
`

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
		&models.User{},
		&models.Service{},
		&models.Reservation{},
		&models.CalendarBlock{},
		&models.Reminder{},
		&models.DeletedServiceRecord{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// exclusion constraint: última linha de defesa contra sobreposição
	// de blocos ativos, caso alguma escrita contorne o lock de janela
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}
	if err := db.Exec(blockNoOverlapConstraintSQL).Error; err != nil {
		log.Fatalf("failed to install no-overlap constraint: %v", err)
	}

	return db
}
