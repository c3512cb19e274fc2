package domain

// Ingredient — запись каталога ингредиентов. Каталог наполняется
// офлайн-импортом (cmd/loadcsv); запись считается существующей,
// если совпадает пара (name, measurement_unit).
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:200;not null;index"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:200;not null"`
}

func (Ingredient) TableName() string { return "ingredients" }
