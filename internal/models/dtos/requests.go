package dtos

import "infinite-experiment/motorpool/internal/models/entities"

// VehicleRequest is the payload for both create and update. Fields are
// pointers so a missing key and a present-but-zero value can be told apart
// by the required rule; Description alone may be omitted or null.
type VehicleRequest struct {
	ManufacturerName *string  `json:"manufacturer_name" validate:"required,min=1,max=255"`
	Description      *string  `json:"description"`
	HorsePower       *int     `json:"horse_power" validate:"required"`
	ModelName        *string  `json:"model_name" validate:"required,min=1,max=255"`
	ModelYear        *int     `json:"model_year" validate:"required"`
	PurchasePrice    *float64 `json:"purchase_price" validate:"required"`
	FuelType         *string  `json:"fuel_type" validate:"required,max=50"`
}

// ToEntity materializes the payload under the given VIN. The request must
// have passed validation; required fields are dereferenced.
func (r VehicleRequest) ToEntity(vin string) *entities.Vehicle {
	return &entities.Vehicle{
		VIN:              vin,
		ManufacturerName: *r.ManufacturerName,
		Description:      r.Description,
		HorsePower:       *r.HorsePower,
		ModelName:        *r.ModelName,
		ModelYear:        *r.ModelYear,
		PurchasePrice:    *r.PurchasePrice,
		FuelType:         *r.FuelType,
	}
}
