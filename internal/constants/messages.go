package constants

// Client-facing messages. These are part of the wire contract, so handlers
// reference them from here instead of inlining strings.
const (
	MsgMalformedJSON    = "Invalid JSON format - cannot parse request body"
	MsgValidationFailed = "Validation error - invalid or missing fields"
	MsgVehicleNotFound  = "Vehicle not found"

	MsgListVehiclesFailed  = "Failed to retrieve vehicles from database"
	MsgCreateVehicleFailed = "Failed to create new vehicle"
	MsgGetVehicleFailed    = "Failed to retrieve vehicle"
	MsgUpdateVehicleFailed = "Failed to update vehicle"
	MsgDeleteVehicleFailed = "Failed to delete vehicle"
	MsgDatabaseUnavailable = "Database connection failed"
	MsgHealthRunning       = "Vehicle Management API is running"
)

const (
	HealthStatusHealthy = "healthy"
	HealthDBConnected   = "connected"
)
