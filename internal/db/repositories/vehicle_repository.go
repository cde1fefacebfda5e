package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"infinite-experiment/motorpool/internal/apperr"
	"infinite-experiment/motorpool/internal/constants"
	"infinite-experiment/motorpool/internal/metrics"
	"infinite-experiment/motorpool/internal/models/entities"
)

const uniqueViolation = pq.ErrorCode("23505")

type VehicleRepository struct {
	db      *sqlx.DB
	timeout time.Duration
	metrics *metrics.MetricsRegistry
}

func NewVehicleRepository(db *sqlx.DB, timeout time.Duration, reg *metrics.MetricsRegistry) *VehicleRepository {
	return &VehicleRepository{db: db, timeout: timeout, metrics: reg}
}

// runInTx scopes one operation to its own transaction and deadline. The
// transaction commits only if fn returns nil; any error path rolls back.
func (r *VehicleRepository) runInTx(ctx context.Context, queryType string, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	err := r.execTx(ctx, fn)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.metrics.DBQueriesTotal.WithLabelValues(queryType, outcome).Inc()
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
	return err
}

func (r *VehicleRepository) execTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // safe even after Commit

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *VehicleRepository) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles := make([]entities.Vehicle, 0)
	err := r.runInTx(ctx, "select_all", func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &vehicles, constants.GetAllVehicles)
	})
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetVehicleByVIN(ctx context.Context, vin string) (*entities.Vehicle, error) {
	var v entities.Vehicle
	err := r.runInTx(ctx, "select_by_vin", func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, constants.GetVehicleByVin, vin).StructScan(&v)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("get vehicle by vin: %w", err)
	}
	return &v, nil
}

// NextSequenceValue draws the next value from vehicle_id_seq. Runs in its
// own transaction; Postgres sequences do not roll back.
func (r *VehicleRepository) NextSequenceValue(ctx context.Context) (int64, error) {
	var seq int64
	err := r.runInTx(ctx, "nextval", func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &seq, constants.NextVehicleSequence)
	})
	if err != nil {
		return 0, fmt.Errorf("next vehicle sequence: %w", err)
	}
	return seq, nil
}

func (r *VehicleRepository) InsertVehicle(ctx context.Context, v *entities.Vehicle) (*entities.Vehicle, error) {
	var created entities.Vehicle
	err := r.runInTx(ctx, "insert", func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, constants.InsertVehicle,
			v.VIN,
			v.ManufacturerName,
			v.Description,
			v.HorsePower,
			v.ModelName,
			v.ModelYear,
			v.PurchasePrice,
			v.FuelType,
		).StructScan(&created)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperr.ErrDuplicateVIN
		}
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}
	r.metrics.VehiclesCreatedTotal.Inc()
	return &created, nil
}

func (r *VehicleRepository) UpdateVehicleByVIN(ctx context.Context, vin string, v *entities.Vehicle) (*entities.Vehicle, error) {
	var updated entities.Vehicle
	err := r.runInTx(ctx, "update", func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, constants.UpdateVehicleByVin,
			v.ManufacturerName,
			v.Description,
			v.HorsePower,
			v.ModelName,
			v.ModelYear,
			v.PurchasePrice,
			v.FuelType,
			vin,
		).StructScan(&updated)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("update vehicle by vin: %w", err)
	}
	return &updated, nil
}

func (r *VehicleRepository) DeleteVehicleByVIN(ctx context.Context, vin string) error {
	var deleted string
	err := r.runInTx(ctx, "delete", func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, constants.DeleteVehicleByVin, vin).Scan(&deleted)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrVehicleNotFound
		}
		return fmt.Errorf("delete vehicle by vin: %w", err)
	}
	r.metrics.VehiclesDeletedTotal.Inc()
	return nil
}

// Ping verifies connectivity by asking the server for its version string.
func (r *VehicleRepository) Ping(ctx context.Context) error {
	var version string
	err := r.runInTx(ctx, "ping", func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &version, constants.GetServerVersion)
	})
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
