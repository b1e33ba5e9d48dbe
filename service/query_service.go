package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pasacalle/apperror"
	"pasacalle/model"
)

type QueryService struct {
	db *gorm.DB
}

func NewQueryService(db *gorm.DB) *QueryService {
	return &QueryService{db: db}
}

type dishRestaurantRow struct {
	ID             uint    `gorm:"column:ID_PLATO"`
	Category       string  `gorm:"column:CATEGORIA_PLATO"`
	Name           string  `gorm:"column:NOMBRE_PLATO"`
	Image          *string `gorm:"column:IMAGEN_PLATO"`
	Description    string  `gorm:"column:DESCRIPCION_PLATO"`
	Price          float64 `gorm:"column:PRECIO_PLATO"`
	RestaurantName string  `gorm:"column:NOMBRE_RESTAURANTE"`
}

// ListDishesWithRestaurant joins every dish to its restaurant. The join is
// inner: a dish whose restaurant id does not resolve is left out.
func (s *QueryService) ListDishesWithRestaurant(ctx context.Context) ([]model.DishWithRestaurant, error) {
	var rows []dishRestaurantRow
	err := s.db.WithContext(ctx).
		Model(&model.Dish{}).
		Select(`"PLATOS"."ID_PLATO", "PLATOS"."CATEGORIA_PLATO", "PLATOS"."NOMBRE_PLATO", ` +
			`"PLATOS"."IMAGEN_PLATO", "PLATOS"."DESCRIPCION_PLATO", "PLATOS"."PRECIO_PLATO", ` +
			`"restaurante"."NOMBRE_RESTAURANTE"`).
		Joins(`INNER JOIN "restaurantes" AS "restaurante" ON "restaurante"."ID_RESTAURANTE" = "PLATOS"."ID_RESTAURANTE"`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes with restaurant: %w", err)
	}

	dishes := make([]model.DishWithRestaurant, 0, len(rows))
	for _, r := range rows {
		dishes = append(dishes, model.DishWithRestaurant{
			ID:          r.ID,
			Category:    r.Category,
			Name:        r.Name,
			Image:       r.Image,
			Description: r.Description,
			Price:       r.Price,
			Restaurant:  model.RestaurantRef{Name: r.RestaurantName},
		})
	}
	return dishes, nil
}

// ListCategoryCounts returns one row per distinct category in store order.
func (s *QueryService) ListCategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	counts := []model.CategoryCount{}
	err := s.db.WithContext(ctx).
		Model(&model.Dish{}).
		Select(`"CATEGORIA_PLATO" AS "categoria", COUNT("CATEGORIA_PLATO") AS "cantidad"`).
		Group(`"CATEGORIA_PLATO"`).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	return counts, nil
}

func (s *QueryService) ListRestaurantSummaries(ctx context.Context) ([]model.RestaurantSummary, error) {
	restaurants := []model.RestaurantSummary{}
	err := s.db.WithContext(ctx).
		Model(&model.Restaurant{}).
		Select("ID_RESTAURANTE", "NOMBRE_RESTAURANTE", "IMAGEN_RESTAURANTE", "DESCRIPCION_RESTAURANTE", "UBICACION_RESTAURANTE").
		Scan(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *QueryService) ListRestaurantNames(ctx context.Context) ([]model.RestaurantName, error) {
	names := []model.RestaurantName{}
	err := s.db.WithContext(ctx).
		Model(&model.Restaurant{}).
		Select("NOMBRE_RESTAURANTE").
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant names: %w", err)
	}
	return names, nil
}

// ListDishes dumps every dish row with all columns.
func (s *QueryService) ListDishes(ctx context.Context) ([]model.Dish, error) {
	dishes := []model.Dish{}
	if err := s.db.WithContext(ctx).Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}
	return dishes, nil
}

// ListUserCredentials returns id, account and stored password of every
// user.
func (s *QueryService) ListUserCredentials(ctx context.Context) ([]model.UserCredentials, error) {
	users := []model.UserCredentials{}
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Select("ID_USUARIO", "CUENTA_USUARIO", "CONTRASENIA").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser looks a user up by its raw path id. An id that is not a positive
// number cannot match a row and is reported as not found.
func (s *QueryService) GetUser(ctx context.Context, rawID string) (*model.UserDetail, error) {
	id, _ := parseID(rawID)
	if id == 0 {
		return nil, apperror.NotFound(msgUserNotFound)
	}

	var user model.UserDetail
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Select("ID_USUARIO", "FECHANACIMIENTO_USUARIO", "NOMBRE_USUARIO", "APELLIDO_USUARIO",
			"CORREOELECTRONICO_USUARIO", "CONTRASENIA", "Telefono_Usuario").
		Where(`"ID_USUARIO" = ?`, id).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// GetRestaurantHours returns the working days and the opening and closing
// times as HH:MM:SS text. An id that is not an integer is a bad request;
// an integer no row can carry is not found without touching the store.
func (s *QueryService) GetRestaurantHours(ctx context.Context, rawID string) (*model.RestaurantHours, error) {
	id, numeric := parseID(rawID)
	if !numeric {
		return nil, apperror.BadRequest(msgInvalidRestaurant)
	}
	if id == 0 {
		return nil, apperror.NotFound(msgRestaurantNotFound)
	}

	var hours model.RestaurantHours
	err := s.db.WithContext(ctx).
		Model(&model.Restaurant{}).
		Select(`"DIASLABORABLES_RESTAURANTE", ` +
			`to_char("HORAINICIOLABORAL_RESTAURANTE", 'HH24:MI:SS') AS "HORAINICIOLABORAL_RESTAURANTE", ` +
			`to_char("HORAFINLABORAL_RESTAURANTE", 'HH24:MI:SS') AS "HORAFINLABORAL_RESTAURANTE"`).
		Where(`"ID_RESTAURANTE" = ?`, id).
		Take(&hours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(msgRestaurantNotFound)
		}
		return nil, fmt.Errorf("failed to get hours of restaurant %d: %w", id, err)
	}
	return &hours, nil
}
