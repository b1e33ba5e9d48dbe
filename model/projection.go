package model

// Read projections. Each one lists exactly the columns its endpoint
// exposes, keyed the way the clients expect.

type RestaurantRef struct {
	Name string `json:"NOMBRE_RESTAURANTE"`
}

// DishWithRestaurant is a row of GET /comidas.
type DishWithRestaurant struct {
	ID          uint          `json:"ID_PLATO"`
	Category    string        `json:"CATEGORIA_PLATO"`
	Name        string        `json:"NOMBRE_PLATO"`
	Image       *string       `json:"IMAGEN_PLATO"`
	Description string        `json:"DESCRIPCION_PLATO"`
	Price       float64       `json:"PRECIO_PLATO"`
	Restaurant  RestaurantRef `json:"restaurante"`
}

type CategoryCount struct {
	Category string `json:"categoria" gorm:"column:categoria"`
	Count    int64  `json:"cantidad" gorm:"column:cantidad"`
}

type RestaurantSummary struct {
	ID          uint   `json:"ID_RESTAURANTE" gorm:"column:ID_RESTAURANTE"`
	Name        string `json:"NOMBRE_RESTAURANTE" gorm:"column:NOMBRE_RESTAURANTE"`
	Image       string `json:"IMAGEN_RESTAURANTE" gorm:"column:IMAGEN_RESTAURANTE"`
	Description string `json:"DESCRIPCION_RESTAURANTE" gorm:"column:DESCRIPCION_RESTAURANTE"`
	Location    string `json:"UBICACION_RESTAURANTE" gorm:"column:UBICACION_RESTAURANTE"`
}

type RestaurantName struct {
	Name string `json:"NOMBRE_RESTAURANTE" gorm:"column:NOMBRE_RESTAURANTE"`
}

// RestaurantHours carries times already formatted as HH:MM:SS.
type RestaurantHours struct {
	WorkingDays string  `json:"DIASLABORABLES_RESTAURANTE" gorm:"column:DIASLABORABLES_RESTAURANTE"`
	OpeningTime string  `json:"HORAINICIOLABORAL_RESTAURANTE" gorm:"column:HORAINICIOLABORAL_RESTAURANTE"`
	ClosingTime *string `json:"HORAFINLABORAL_RESTAURANTE" gorm:"column:HORAFINLABORAL_RESTAURANTE"`
}

// UserCredentials is a row of GET /usuarios.
type UserCredentials struct {
	ID       uint   `json:"ID_USUARIO" gorm:"column:ID_USUARIO"`
	Account  string `json:"CUENTA_USUARIO" gorm:"column:CUENTA_USUARIO"`
	Password string `json:"CONTRASENIA" gorm:"column:CONTRASENIA"`
}

// UserDetail is GET /usuarios/:id. The account identifier is not part of it.
type UserDetail struct {
	ID        uint    `json:"ID_USUARIO" gorm:"column:ID_USUARIO"`
	BirthDate Date    `json:"FECHANACIMIENTO_USUARIO" gorm:"column:FECHANACIMIENTO_USUARIO"`
	FirstName string  `json:"NOMBRE_USUARIO" gorm:"column:NOMBRE_USUARIO"`
	LastName  *string `json:"APELLIDO_USUARIO" gorm:"column:APELLIDO_USUARIO"`
	Email     string  `json:"CORREOELECTRONICO_USUARIO" gorm:"column:CORREOELECTRONICO_USUARIO"`
	Password  string  `json:"CONTRASENIA" gorm:"column:CONTRASENIA"`
	Phone     string  `json:"Telefono_Usuario" gorm:"column:Telefono_Usuario"`
}
