package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"infinite-experiment/motorpool/internal/apperr"
	"infinite-experiment/motorpool/internal/constants"
	"infinite-experiment/motorpool/internal/models/dtos"
	"infinite-experiment/motorpool/internal/validation"
	"infinite-experiment/motorpool/internal/vin"
)

// ListVehiclesHandler handles GET /vehicle
//
// @Summary      List vehicles
// @Description  Returns every vehicle on record. An empty fleet yields [].
// @Tags         Vehicles
// @Produce      json
// @Success      200  {array}   dtos.VehicleResponse
// @Failure      500  {object}  dtos.ErrorResponse
// @Router       /vehicle [get]
func ListVehiclesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := deps.Store.ListVehicles(r.Context())
		if err != nil {
			respondWithAppError(w, r, apperr.Wrap(apperr.KindPersistence, constants.MsgListVehiclesFailed, err))
			return
		}

		respondWithJSON(w, http.StatusOK, dtos.VehicleListResponse(vehicles))
	}
}

// CreateVehicleHandler handles POST /vehicle
//
// @Summary      Create a vehicle
// @Description  Creates a vehicle under a system-generated 17-character VIN.
// @Tags         Vehicles
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.VehicleRequest  true  "Vehicle payload"
// @Success      201  {object}  dtos.VehicleResponse
// @Failure      400  {object}  dtos.ErrorResponse
// @Failure      422  {object}  dtos.ErrorResponse
// @Failure      500  {object}  dtos.ErrorResponse
// @Router       /vehicle [post]
func CreateVehicleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.VehicleRequest
		if appErr := validation.DecodeAndValidate(r.Body, &req); appErr != nil {
			respondWithAppError(w, r, appErr)
			return
		}

		seq, err := deps.Store.NextSequenceValue(r.Context())
		if err != nil {
			respondWithAppError(w, r, apperr.Wrap(apperr.KindPersistence, constants.MsgCreateVehicleFailed, err))
			return
		}

		created, err := deps.Store.InsertVehicle(r.Context(), req.ToEntity(vin.Generate(seq)))
		if err != nil {
			respondWithAppError(w, r, apperr.Wrap(apperr.KindPersistence, constants.MsgCreateVehicleFailed, err))
			return
		}

		respondWithJSON(w, http.StatusCreated, dtos.VehicleResponseFromEntity(*created))
	}
}

// GetVehicleHandler handles GET /vehicle/{vin}
//
// @Summary      Get a vehicle
// @Description  Retrieves one vehicle by VIN. The VIN matches case-insensitively.
// @Tags         Vehicles
// @Produce      json
// @Param        vin  path  string  true  "Vehicle Identification Number"
// @Success      200  {object}  dtos.VehicleResponse
// @Failure      404  {object}  dtos.ErrorResponse
// @Failure      500  {object}  dtos.ErrorResponse
// @Router       /vehicle/{vin} [get]
func GetVehicleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicle, err := deps.Store.GetVehicleByVIN(r.Context(), chi.URLParam(r, "vin"))
		if err != nil {
			if errors.Is(err, apperr.ErrVehicleNotFound) {
				respondWithAppError(w, r, apperr.E(apperr.KindNotFound, constants.MsgVehicleNotFound))
				return
			}
			respondWithAppError(w, r, apperr.Wrap(apperr.KindPersistence, constants.MsgGetVehicleFailed, err))
			return
		}

		respondWithJSON(w, http.StatusOK, dtos.VehicleResponseFromEntity(*vehicle))
	}
}

// UpdateVehicleHandler handles PUT /vehicle/{vin}
//
// @Summary      Update a vehicle
// @Description  Replaces every mutable field of the vehicle at the given VIN.
// @Tags         Vehicles
// @Accept       json
// @Produce      json
// @Param        vin    path  string               true  "Vehicle Identification Number"
// @Param        input  body  dtos.VehicleRequest  true  "Vehicle payload"
// @Success      200  {object}  dtos.VehicleResponse
// @Failure      400  {object}  dtos.ErrorResponse
// @Failure      404  {object}  dtos.ErrorResponse
// @Failure      422  {object}  dtos.ErrorResponse
// @Failure      500  {object}  dtos.ErrorResponse
// @Router       /vehicle/{vin} [put]
func UpdateVehicleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vinParam := chi.URLParam(r, "vin")

		// Payload problems win over a missing record.
		var req dtos.VehicleRequest
		if appErr := validation.DecodeAndValidate(r.Body, &req); appErr != nil {
			respondWithAppError(w, r, appErr)
			return
		}

		updated, err := deps.Store.UpdateVehicleByVIN(r.Context(), vinParam, req.ToEntity(vinParam))
		if err != nil {
			if errors.Is(err, apperr.ErrVehicleNotFound) {
				respondWithAppError(w, r, apperr.E(apperr.KindNotFound, constants.MsgVehicleNotFound))
				return
			}
			respondWithAppError(w, r, apperr.Wrap(apperr.KindPersistence, constants.MsgUpdateVehicleFailed, err))
			return
		}

		respondWithJSON(w, http.StatusOK, dtos.VehicleResponseFromEntity(*updated))
	}
}

// DeleteVehicleHandler handles DELETE /vehicle/{vin}
//
// @Summary      Delete a vehicle
// @Description  Removes the vehicle at the given VIN.
// @Tags         Vehicles
// @Param        vin  path  string  true  "Vehicle Identification Number"
// @Success      204  "No Content"
// @Failure      404  {object}  dtos.ErrorResponse
// @Failure      500  {object}  dtos.ErrorResponse
// @Router       /vehicle/{vin} [delete]
func DeleteVehicleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Store.DeleteVehicleByVIN(r.Context(), chi.URLParam(r, "vin")); err != nil {
			if errors.Is(err, apperr.ErrVehicleNotFound) {
				respondWithAppError(w, r, apperr.E(apperr.KindNotFound, constants.MsgVehicleNotFound))
				return
			}
			respondWithAppError(w, r, apperr.Wrap(apperr.KindPersistence, constants.MsgDeleteVehicleFailed, err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ============================================================================
// Handler Methods (Wrapped for DI pattern - Hybrid Approach)
// ============================================================================

func (h *Handlers) ListVehicles() http.HandlerFunc {
	return ListVehiclesHandler(h.deps)
}

func (h *Handlers) CreateVehicle() http.HandlerFunc {
	return CreateVehicleHandler(h.deps)
}

func (h *Handlers) GetVehicle() http.HandlerFunc {
	return GetVehicleHandler(h.deps)
}

func (h *Handlers) UpdateVehicle() http.HandlerFunc {
	return UpdateVehicleHandler(h.deps)
}

func (h *Handlers) DeleteVehicle() http.HandlerFunc {
	return DeleteVehicleHandler(h.deps)
}
