package gorm

type Vehicle struct {
	VIN              string  `gorm:"column:vin;primaryKey;type:varchar(17)"`
	ManufacturerName string  `gorm:"column:manufacturer_name;type:varchar(255);not null"`
	Description      *string `gorm:"column:description;type:text"`
	HorsePower       int     `gorm:"column:horse_power;not null"`
	ModelName        string  `gorm:"column:model_name;type:varchar(255);not null"`
	ModelYear        int     `gorm:"column:model_year;not null"`
	PurchasePrice    float64 `gorm:"column:purchase_price;type:numeric;not null"`
	FuelType         string  `gorm:"column:fuel_type;type:varchar(50);not null"`
}

// TableName specifies the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}
