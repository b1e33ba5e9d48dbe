package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pasacalle/model"
)

// CreateReservation serves POST /reserva.
func (h *Handler) CreateReservation(c *gin.Context) {
	var in model.ReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	reservation, err := h.mutations.CreateReservation(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err, "failed to create reservation")
		return
	}

	h.log.Info().
		Uint("reservation_id", reservation.ID).
		Uint("restaurant_id", reservation.RestaurantID).
		Uint("user_id", reservation.UserID).
		Msg("reservation created")
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Reserva creada exitosamente"})
}
