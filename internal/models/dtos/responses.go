package dtos

import (
	"infinite-experiment/motorpool/internal/apperr"
	"infinite-experiment/motorpool/internal/models/entities"
)

// ErrorResponse is the body of every non-2xx response. Errors carries the
// field violations for payload failures and is omitted otherwise.
type ErrorResponse struct {
	Detail string             `json:"detail"`
	Errors []apperr.Violation `json:"errors,omitempty"`
}

type VehicleResponse struct {
	VIN              string  `json:"vin"`
	ManufacturerName string  `json:"manufacturer_name"`
	Description      *string `json:"description"`
	HorsePower       int     `json:"horse_power"`
	ModelName        string  `json:"model_name"`
	ModelYear        int     `json:"model_year"`
	PurchasePrice    float64 `json:"purchase_price"`
	FuelType         string  `json:"fuel_type"`
}

func VehicleResponseFromEntity(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		VIN:              v.VIN,
		ManufacturerName: v.ManufacturerName,
		Description:      v.Description,
		HorsePower:       v.HorsePower,
		ModelName:        v.ModelName,
		ModelYear:        v.ModelYear,
		PurchasePrice:    v.PurchasePrice,
		FuelType:         v.FuelType,
	}
}

// VehicleListResponse never returns nil so an empty table serializes as []
// rather than null.
func VehicleListResponse(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleResponseFromEntity(v))
	}
	return out
}
