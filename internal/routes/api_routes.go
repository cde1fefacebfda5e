package routes

import (
	"infinite-experiment/motorpool/internal/api"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the vehicle resource routes and handlers
// This keeps route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers) {
	r.Get("/vehicle", handlers.ListVehicles())
	r.Post("/vehicle", handlers.CreateVehicle())

	r.Get("/vehicle/{vin}", handlers.GetVehicle())
	r.Put("/vehicle/{vin}", handlers.UpdateVehicle())
	r.Delete("/vehicle/{vin}", handlers.DeleteVehicle())
}
