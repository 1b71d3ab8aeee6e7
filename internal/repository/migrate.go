package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table this package owns.
// On postgres it also installs an exclusion constraint so two live bookings
// can never overlap on the same court, even across concurrent transactions
// that both passed the availability pre-check.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&courtModel{},
		&bookingModel{},
		&paymentNotificationModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	// ALTER TABLE ... ADD CONSTRAINT has no IF NOT EXISTS, so guard via
	// pg_constraint. Violations surface as SQLSTATE 23P01.
	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'idx_bookings_no_overlap'
			) THEN
				ALTER TABLE bookings
					ADD CONSTRAINT idx_bookings_no_overlap
					EXCLUDE USING gist (
						court_id WITH =,
						tstzrange(start_time, end_time) WITH &&
					)
					WHERE (status <> 'cancelled');
			END IF;
		END
		$$;
	`).Error
}
