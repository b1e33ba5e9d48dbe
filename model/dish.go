package model

type Dish struct {
	ID           uint    `json:"ID_PLATO" gorm:"column:ID_PLATO;primaryKey;autoIncrement"`
	RestaurantID uint    `json:"ID_RESTAURANTE" gorm:"column:ID_RESTAURANTE;not null;index"`
	Category     string  `json:"CATEGORIA_PLATO" gorm:"column:CATEGORIA_PLATO;not null"`
	Name         string  `json:"NOMBRE_PLATO" gorm:"column:NOMBRE_PLATO;not null"`
	Image        *string `json:"IMAGEN_PLATO" gorm:"column:IMAGEN_PLATO;type:text"`
	Description  string  `json:"DESCRIPCION_PLATO" gorm:"column:DESCRIPCION_PLATO;not null"`
	Price        float64 `json:"PRECIO_PLATO" gorm:"column:PRECIO_PLATO;not null"`

	Restaurant *Restaurant `json:"restaurante,omitempty" gorm:"foreignKey:RestaurantID;references:ID"`
}

func (Dish) TableName() string {
	return "PLATOS"
}
