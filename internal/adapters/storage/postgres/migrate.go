package postgres

import "gorm.io/gorm"

// Migrate crea/actualiza el esquema (pets primero: los hijos referencian pet_id).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&petRow{},
		&vaccineRow{},
		&dewormerRow{},
		&reminderRow{},
	)
}
