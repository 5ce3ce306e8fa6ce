package database

import (
	"log"

	"github.com/hoteldesk/reservation-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Room{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Exclusion constraint: the database itself rejects two confirmed
	// bookings for the same room with overlapping [check_in, check_out)
	// ranges, backstopping the row-lock discipline in the service layer.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
		DO $$ BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_confirmed_overlap'
			) THEN
				ALTER TABLE bookings ADD CONSTRAINT bookings_no_confirmed_overlap
				EXCLUDE USING gist (
					room_id WITH =,
					tstzrange(check_in, check_out) WITH &&
				) WHERE (status = 'confirmed');
			END IF;
		END $$
	`)

	return db
}
