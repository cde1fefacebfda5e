package constants

const (
	GetAllVehicles = `
	SELECT vin, manufacturer_name, description, horse_power, model_name, model_year, purchase_price, fuel_type
	FROM vehicles
	`

	GetVehicleByVin = `
	SELECT vin, manufacturer_name, description, horse_power, model_name, model_year, purchase_price, fuel_type
	FROM vehicles
	WHERE LOWER(vin) = LOWER($1)
	`

	InsertVehicle = `
	INSERT INTO vehicles (vin, manufacturer_name, description, horse_power, model_name, model_year, purchase_price, fuel_type)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING vin, manufacturer_name, description, horse_power, model_name, model_year, purchase_price, fuel_type
	`

	UpdateVehicleByVin = `
	UPDATE vehicles
	SET manufacturer_name = $1,
	    description       = $2,
	    horse_power       = $3,
	    model_name        = $4,
	    model_year        = $5,
	    purchase_price    = $6,
	    fuel_type         = $7
	WHERE LOWER(vin) = LOWER($8)
	RETURNING vin, manufacturer_name, description, horse_power, model_name, model_year, purchase_price, fuel_type
	`

	DeleteVehicleByVin = `
	DELETE FROM vehicles
	WHERE LOWER(vin) = LOWER($1)
	RETURNING vin
	`

	NextVehicleSequence = `SELECT nextval('vehicle_id_seq')`

	GetServerVersion = `SELECT version()`
)
