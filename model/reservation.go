package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type Reservation struct {
	ID           uint    `json:"ID_RESERVA" gorm:"column:ID_RESERVA;primaryKey;autoIncrement"`
	RestaurantID uint    `json:"ID_RESTAURANTE" gorm:"column:ID_RESTAURANTE;not null;index"`
	UserID       uint    `json:"ID_USUARIO" gorm:"column:ID_USUARIO;not null;index"`
	Date         Date    `json:"FECHA_RESERVA" gorm:"column:FECHA_RESERVA;not null"`
	StartTime    *string `json:"HORAINICIO_RESERVA" gorm:"column:HORAINICIO_RESERVA;type:time"`
	PartySize    int     `json:"CANTIDAD_PERSONAS" gorm:"column:CANTIDAD_PERSONAS;not null"`

	Restaurant *Restaurant `json:"restaurante,omitempty" gorm:"foreignKey:RestaurantID;references:ID"`
	User       *User       `json:"usuario,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (Reservation) TableName() string {
	return "reservas"
}

// ReservationInput is the body of POST /reserva.
type ReservationInput struct {
	RestaurantID uint    `json:"ID_RESTAURANTE"`
	UserID       uint    `json:"ID_USUARIO"`
	Date         Date    `json:"FECHA_RESERVA"`
	StartTime    *string `json:"HORAINICIO_RESERVA"`
	PartySize    int     `json:"CANTIDAD_PERSONAS"`
}

// UnmarshalJSON accepts the numeric fields either as JSON numbers or as
// numeric strings ("3"), which existing clients send.
func (in *ReservationInput) UnmarshalJSON(b []byte) error {
	type plain ReservationInput
	aux := struct {
		RestaurantID json.Number `json:"ID_RESTAURANTE"`
		UserID       json.Number `json:"ID_USUARIO"`
		PartySize    json.Number `json:"CANTIDAD_PERSONAS"`
		*plain
	}{plain: (*plain)(in)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	var err error
	if in.RestaurantID, err = uintField("ID_RESTAURANTE", aux.RestaurantID); err != nil {
		return err
	}
	if in.UserID, err = uintField("ID_USUARIO", aux.UserID); err != nil {
		return err
	}
	size, err := uintField("CANTIDAD_PERSONAS", aux.PartySize)
	if err != nil {
		return err
	}
	in.PartySize = int(size)
	return nil
}

func uintField(name string, n json.Number) (uint, error) {
	if n == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(n.String(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer: %q", name, n)
	}
	return uint(v), nil
}

func (in ReservationInput) Reservation() Reservation {
	return Reservation{
		RestaurantID: in.RestaurantID,
		UserID:       in.UserID,
		Date:         in.Date,
		StartTime:    in.StartTime,
		PartySize:    in.PartySize,
	}
}
