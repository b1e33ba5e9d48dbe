package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pasacalle/model"
)

// GetUsers serves GET /usuarios.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.queries.ListUserCredentials(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to get users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID serves GET /usuarios/:id.
func (h *Handler) GetUserByID(c *gin.Context) {
	user, err := h.queries.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to get user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser serves POST /usuarios.
func (h *Handler) CreateUser(c *gin.Context) {
	var in model.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	user, err := h.mutations.CreateUser(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err, "failed to create user")
		return
	}

	h.log.Info().Uint("user_id", user.ID).Msg("user created")
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Usuario creado exitosamente"})
}

// UpdateUser serves PUT /usuarios/:id. Whether a row was touched is only
// logged.
func (h *Handler) UpdateUser(c *gin.Context) {
	var patch model.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	rows, err := h.mutations.UpdateUser(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, err, "failed to update user")
		return
	}

	h.log.Debug().Str("user_id", c.Param("id")).Int64("rows", rows).Msg("user updated")
	c.JSON(http.StatusOK, gin.H{"mensaje": "Usuario actualizado exitosamente"})
}
