package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pasacalle/apperror"
	"pasacalle/model"
)

const msgInvalidBody = "Cuerpo de la solicitud no válido"

// Queries is the read side used by the handlers.
type Queries interface {
	ListDishesWithRestaurant(ctx context.Context) ([]model.DishWithRestaurant, error)
	ListCategoryCounts(ctx context.Context) ([]model.CategoryCount, error)
	ListRestaurantSummaries(ctx context.Context) ([]model.RestaurantSummary, error)
	ListRestaurantNames(ctx context.Context) ([]model.RestaurantName, error)
	ListDishes(ctx context.Context) ([]model.Dish, error)
	ListUserCredentials(ctx context.Context) ([]model.UserCredentials, error)
	GetUser(ctx context.Context, rawID string) (*model.UserDetail, error)
	GetRestaurantHours(ctx context.Context, rawID string) (*model.RestaurantHours, error)
}

// Mutations is the write side used by the handlers.
type Mutations interface {
	CreateDish(ctx context.Context, image string) (*model.Dish, error)
	CreateDishes(ctx context.Context, dishes []model.Dish) (int, error)
	CreateReservation(ctx context.Context, in model.ReservationInput) (*model.Reservation, error)
	CreateUser(ctx context.Context, in model.UserInput) (*model.User, error)
	UpdateUser(ctx context.Context, rawID string, patch model.UserPatch) (int64, error)
}

type Handler struct {
	queries   Queries
	mutations Mutations
	log       *zerolog.Logger
}

func NewHandler(queries Queries, mutations Mutations, log *zerolog.Logger) *Handler {
	return &Handler{queries: queries, mutations: mutations, log: log}
}

// respondError maps err onto the status taxonomy. Internal details are
// logged and never sent to the client.
func (h *Handler) respondError(c *gin.Context, err error, action string) {
	switch apperror.TypeOf(err) {
	case apperror.ErrorTypeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": apperror.PublicMessage(err)})
		return
	case apperror.ErrorTypeBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": apperror.PublicMessage(err)})
		return
	}

	h.log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg(action)
	c.JSON(http.StatusInternalServerError, gin.H{"error": apperror.MsgInternal})
}
