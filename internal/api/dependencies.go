package api

import (
	"context"

	"infinite-experiment/motorpool/internal/config"
	"infinite-experiment/motorpool/internal/db"
	"infinite-experiment/motorpool/internal/db/repositories"
	"infinite-experiment/motorpool/internal/metrics"
	"infinite-experiment/motorpool/internal/models/entities"
)

// VehicleStore is the persistence surface the handlers consume. Implemented
// by repositories.VehicleRepository.
type VehicleStore interface {
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	GetVehicleByVIN(ctx context.Context, vin string) (*entities.Vehicle, error)
	NextSequenceValue(ctx context.Context) (int64, error)
	InsertVehicle(ctx context.Context, v *entities.Vehicle) (*entities.Vehicle, error)
	UpdateVehicleByVIN(ctx context.Context, vin string, v *entities.Vehicle) (*entities.Vehicle, error)
	DeleteVehicleByVIN(ctx context.Context, vin string) error
	Ping(ctx context.Context) error
}

type Dependencies struct {
	Store   VehicleStore
	Metrics *metrics.MetricsRegistry
	Config  *config.Config
}

func InitDependencies(cfg *config.Config, reg *metrics.MetricsRegistry) *Dependencies {
	return &Dependencies{
		Store:   repositories.NewVehicleRepository(db.DB, cfg.QueryTimeout, reg),
		Metrics: reg,
		Config:  cfg,
	}
}
