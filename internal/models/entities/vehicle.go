package entities

type Vehicle struct {
	VIN              string  `db:"vin"`
	ManufacturerName string  `db:"manufacturer_name"`
	Description      *string `db:"description"`
	HorsePower       int     `db:"horse_power"`
	ModelName        string  `db:"model_name"`
	ModelYear        int     `db:"model_year"`
	PurchasePrice    float64 `db:"purchase_price"`
	FuelType         string  `db:"fuel_type"`
}
