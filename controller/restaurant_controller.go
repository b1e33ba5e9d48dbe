package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRestaurants serves GET /restaurantes.
func (h *Handler) GetRestaurants(c *gin.Context) {
	restaurants, err := h.queries.ListRestaurantSummaries(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to get restaurants")
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurantNames serves GET /nombreRestaurantes.
func (h *Handler) GetRestaurantNames(c *gin.Context) {
	names, err := h.queries.ListRestaurantNames(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to get restaurant names")
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetRestaurantHours serves GET /horarios/:idRestaurante.
func (h *Handler) GetRestaurantHours(c *gin.Context) {
	hours, err := h.queries.GetRestaurantHours(c.Request.Context(), c.Param("idRestaurante"))
	if err != nil {
		h.respondError(c, err, "failed to get restaurant hours")
		return
	}
	c.JSON(http.StatusOK, hours)
}
