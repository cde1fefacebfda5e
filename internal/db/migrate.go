package db

import (
	"fmt"

	"gorm.io/gorm"

	gormModels "infinite-experiment/motorpool/internal/models/gorm"
)

// AutoMigrate manages tables but not sequences, so the VIN source is
// created separately. Postgres only; test databases seed identifiers
// differently.
const createVehicleSequence = `CREATE SEQUENCE IF NOT EXISTS vehicle_id_seq`

// Migrate creates the vehicles table and the sequence VIN generation
// draws from.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&gormModels.Vehicle{}); err != nil {
		return fmt.Errorf("automigrate vehicles: %w", err)
	}
	if gdb.Dialector.Name() == "postgres" {
		if err := gdb.Exec(createVehicleSequence).Error; err != nil {
			return fmt.Errorf("create vehicle sequence: %w", err)
		}
	}
	return nil
}
