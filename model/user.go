package model

// User keeps the password exactly as submitted. No hashing is applied and
// GET /usuarios returns it; both are known defects kept for compatibility
// with the existing clients and stored data.
type User struct {
	ID        uint    `json:"ID_USUARIO" gorm:"column:ID_USUARIO;primaryKey;autoIncrement"`
	BirthDate Date    `json:"FECHANACIMIENTO_USUARIO" gorm:"column:FECHANACIMIENTO_USUARIO;not null"`
	Password  string  `json:"CONTRASENIA" gorm:"column:CONTRASENIA;not null"`
	FirstName string  `json:"NOMBRE_USUARIO" gorm:"column:NOMBRE_USUARIO;not null"`
	LastName  *string `json:"APELLIDO_USUARIO" gorm:"column:APELLIDO_USUARIO"`
	Email     string  `json:"CORREOELECTRONICO_USUARIO" gorm:"column:CORREOELECTRONICO_USUARIO;not null"`
	Account   string  `json:"CUENTA_USUARIO" gorm:"column:CUENTA_USUARIO;not null"`
	Phone     string  `json:"Telefono_Usuario" gorm:"column:Telefono_Usuario;not null"`
}

func (User) TableName() string {
	return "usuarios"
}

// UserInput is the body of POST /usuarios.
type UserInput struct {
	BirthDate Date    `json:"FECHANACIMIENTO_USUARIO"`
	Password  string  `json:"CONTRASENIA"`
	FirstName string  `json:"NOMBRE_USUARIO"`
	LastName  *string `json:"APELLIDO_USUARIO"`
	Email     string  `json:"CORREOELECTRONICO_USUARIO"`
	Account   string  `json:"CUENTA_USUARIO"`
	Phone     string  `json:"Telefono_Usuario"`
}

func (in UserInput) User() User {
	return User{
		BirthDate: in.BirthDate,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Account:   in.Account,
		Phone:     in.Phone,
	}
}

// UserPatch is the body of PUT /usuarios/:id. Absent fields are left
// untouched; account and password cannot be changed through it.
type UserPatch struct {
	BirthDate *Date   `json:"FECHANACIMIENTO_USUARIO"`
	FirstName *string `json:"NOMBRE_USUARIO"`
	LastName  *string `json:"APELLIDO_USUARIO"`
	Email     *string `json:"CORREOELECTRONICO_USUARIO"`
	Phone     *string `json:"Telefono_Usuario"`
}

// Columns returns the column assignments for the fields present.
func (p UserPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.BirthDate != nil {
		cols["FECHANACIMIENTO_USUARIO"] = *p.BirthDate
	}
	if p.FirstName != nil {
		cols["NOMBRE_USUARIO"] = *p.FirstName
	}
	if p.LastName != nil {
		cols["APELLIDO_USUARIO"] = *p.LastName
	}
	if p.Email != nil {
		cols["CORREOELECTRONICO_USUARIO"] = *p.Email
	}
	if p.Phone != nil {
		cols["Telefono_Usuario"] = *p.Phone
	}
	return cols
}
