package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pasacalle/model"
)

// Fixed values written by CreateDish.
const (
	DemoDishRestaurantID uint    = 1
	DemoDishCategory             = "Entradas"
	DemoDishName                 = "MOTE CON CHICHARRÓN"
	DemoDishDescription          = "El mejor chicharrón selecto acompañado de mote hervido, perfecto para picar."
	DemoDishPrice        float64 = 8.00
)

type MutationService struct {
	db *gorm.DB
}

func NewMutationService(db *gorm.DB) *MutationService {
	return &MutationService{db: db}
}

// DemoDish builds the row inserted by CreateDish around an encoded image.
func DemoDish(image string) model.Dish {
	return model.Dish{
		RestaurantID: DemoDishRestaurantID,
		Category:     DemoDishCategory,
		Name:         DemoDishName,
		Image:        &image,
		Description:  DemoDishDescription,
		Price:        DemoDishPrice,
	}
}

// CreateDish stores the uploaded image on the fixed demonstration dish.
// Any other field sent by the caller is ignored.
func (s *MutationService) CreateDish(ctx context.Context, image string) (*model.Dish, error) {
	dish := DemoDish(image)
	if err := s.db.WithContext(ctx).Create(&dish).Error; err != nil {
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}
	return &dish, nil
}

// CreateDishes inserts all dishes in one statement.
func (s *MutationService) CreateDishes(ctx context.Context, dishes []model.Dish) (int, error) {
	if len(dishes) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).Create(&dishes).Error; err != nil {
		return 0, fmt.Errorf("failed to create %d dishes: %w", len(dishes), err)
	}
	return len(dishes), nil
}

// CreateReservation inserts the reservation as given. Restaurant and user
// ids are not looked up; the foreign keys reject dangling references.
func (s *MutationService) CreateReservation(ctx context.Context, in model.ReservationInput) (*model.Reservation, error) {
	reservation := in.Reservation()
	if err := s.db.WithContext(ctx).Create(&reservation).Error; err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return &reservation, nil
}

// CreateUser inserts a user. Account and email are not checked for
// duplicates.
func (s *MutationService) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	user := in.User()
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// UpdateUser applies the fields present in patch to the user with the
// given raw id and returns the number of rows touched. An id that is not a
// positive number or an empty patch matches nothing and issues no statement.
func (s *MutationService) UpdateUser(ctx context.Context, rawID string, patch model.UserPatch) (int64, error) {
	id, _ := parseID(rawID)
	if id == 0 {
		return 0, nil
	}

	cols := patch.Columns()
	if len(cols) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where(`"ID_USUARIO" = ?`, id).
		Updates(cols)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update user %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}
