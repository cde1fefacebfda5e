package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"infinite-experiment/motorpool/internal/models/dtos"
	"infinite-experiment/motorpool/internal/models/entities"
)

func TestHealthCheckHandler_Healthy(t *testing.T) {
	store := &mockVehicleStore{
		pingFunc: func(ctx context.Context) error {
			return nil
		},
	}
	router := newTestRouter(store)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp entities.HealthCheckResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Expected status healthy, got %q", resp.Status)
	}
	if resp.Message != "Vehicle Management API is running" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
	if resp.Database != "connected" {
		t.Errorf("Expected database connected, got %q", resp.Database)
	}
}

func TestHealthCheckHandler_DatabaseDown(t *testing.T) {
	store := &mockVehicleStore{
		pingFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}
	router := newTestRouter(store)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", rr.Code)
	}

	var resp dtos.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Detail != "Database connection failed: connection refused" {
		t.Errorf("Unexpected detail: %q", resp.Detail)
	}
}
