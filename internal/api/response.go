package api

import (
	"encoding/json"
	"net/http"

	"infinite-experiment/motorpool/internal/apperr"
	"infinite-experiment/motorpool/internal/context"
	"infinite-experiment/motorpool/internal/logging"
	"infinite-experiment/motorpool/internal/models/dtos"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondWithAppError is the single point turning apperr values into HTTP
// responses. Causes are logged here and never serialized.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err *apperr.Error) {
	cause := ""
	if err.Cause != nil {
		cause = err.Cause.Error()
	}

	log := logging.WithRequest(context.GetRequestID(r.Context()), r.Method, r.URL.Path)
	switch err.Kind {
	case apperr.KindPersistence, apperr.KindUnavailable:
		log.Errorw(err.Detail, "kind", err.Kind.String(), "error", cause)
	default:
		if err.Cause != nil || len(err.Violations) > 0 {
			log.Warnw(err.Detail, "kind", err.Kind.String(), "error", cause)
		}
	}

	body := dtos.ErrorResponse{Detail: err.Detail, Errors: err.Violations}
	respondWithJSON(w, err.Kind.HTTPStatus(), body)
}
