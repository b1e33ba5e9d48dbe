// Package service holds the data-access core: read projections and joins
// (QueryService), single-statement writes (MutationService), image
// ingestion and dish sheet import/export.
package service

import (
	"errors"
	"strconv"
	"strings"
)

const (
	msgUserNotFound       = "Usuario no encontrado"
	msgRestaurantNotFound = "Restaurante no encontrado"
	msgInvalidRestaurant  = "ID de restaurante no válido"
)

// parseID reads a base-10 integer id, sign allowed. numeric is false when
// raw is not an integer at all. id is zero for integers no row can carry:
// zero, negative or beyond int64.
func parseID(raw string) (id uint, numeric bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errors.Is(err, strconv.ErrRange)
	}
	if n <= 0 {
		return 0, true
	}
	return uint(n), true
}
