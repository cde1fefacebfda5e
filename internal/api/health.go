package api

import (
	"fmt"
	"net/http"

	"infinite-experiment/motorpool/internal/apperr"
	"infinite-experiment/motorpool/internal/constants"
	"infinite-experiment/motorpool/internal/models/entities"
)

// HealthCheckHandler handles GET /
//
// @Summary Health check
// @Description Verifies the API is running and the database answers queries.
// @Tags Misc
// @Produce json
// @Success 200 {object} entities.HealthCheckResponse
// @Failure 503 {object} dtos.ErrorResponse
// @Router / [get]
func HealthCheckHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := deps.Store.Ping(r.Context()); err != nil {
			detail := fmt.Sprintf("%s: %v", constants.MsgDatabaseUnavailable, err)
			respondWithAppError(w, r, apperr.Wrap(apperr.KindUnavailable, detail, err))
			return
		}

		resp := entities.HealthCheckResponse{
			Status:   constants.HealthStatusHealthy,
			Message:  constants.MsgHealthRunning,
			Database: constants.HealthDBConnected,
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

func (h *Handlers) HealthCheck() http.HandlerFunc {
	return HealthCheckHandler(h.deps)
}
