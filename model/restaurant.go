package model

// Restaurant rows are created out of band; the API only reads them.
type Restaurant struct {
	ID          uint    `json:"ID_RESTAURANTE" gorm:"column:ID_RESTAURANTE;primaryKey;autoIncrement"`
	Name        string  `json:"NOMBRE_RESTAURANTE" gorm:"column:NOMBRE_RESTAURANTE;not null"`
	WorkingDays string  `json:"DIASLABORABLES_RESTAURANTE" gorm:"column:DIASLABORABLES_RESTAURANTE;not null"`
	OpeningTime string  `json:"HORAINICIOLABORAL_RESTAURANTE" gorm:"column:HORAINICIOLABORAL_RESTAURANTE;type:time;not null"`
	ClosingTime *string `json:"HORAFINLABORAL_RESTAURANTE" gorm:"column:HORAFINLABORAL_RESTAURANTE;type:time"`
	Image       string  `json:"IMAGEN_RESTAURANTE" gorm:"column:IMAGEN_RESTAURANTE;type:text;not null"`
	Description string  `json:"DESCRIPCION_RESTAURANTE" gorm:"column:DESCRIPCION_RESTAURANTE;not null"`
	Location    string  `json:"UBICACION_RESTAURANTE" gorm:"column:UBICACION_RESTAURANTE;not null"`
}

func (Restaurant) TableName() string {
	return "restaurantes"
}
