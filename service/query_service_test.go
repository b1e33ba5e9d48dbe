package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasacalle/apperror"
	"pasacalle/database/dbtest"
	"pasacalle/model"
	"pasacalle/service"
)

func TestQueryService_ListDishesWithRestaurant(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := service.NewQueryService(db)

	image := "aW1n"
	mock.ExpectQuery(`SELECT "PLATOS"\."ID_PLATO", .*"restaurante"\."NOMBRE_RESTAURANTE" FROM "PLATOS" ` +
		`INNER JOIN "restaurantes" AS "restaurante" ON "restaurante"\."ID_RESTAURANTE" = "PLATOS"\."ID_RESTAURANTE"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"ID_PLATO", "CATEGORIA_PLATO", "NOMBRE_PLATO", "IMAGEN_PLATO", "DESCRIPCION_PLATO", "PRECIO_PLATO", "NOMBRE_RESTAURANTE",
		}).
			AddRow(1, "Entradas", "Mote con chicharrón", image, "Mote hervido", 8.0, "La Esquina").
			AddRow(2, "Sopas", "Locro", nil, "Locro de papa", 4.5, "Doña Rosa"))

	dishes, err := svc.ListDishesWithRestaurant(context.Background())
	require.NoError(t, err)
	require.Len(t, dishes, 2)

	assert.Equal(t, uint(1), dishes[0].ID)
	assert.Equal(t, "La Esquina", dishes[0].Restaurant.Name)
	require.NotNil(t, dishes[0].Image)
	assert.Equal(t, image, *dishes[0].Image)
	assert.Nil(t, dishes[1].Image)
	assert.Equal(t, "Doña Rosa", dishes[1].Restaurant.Name)
	assert.Equal(t, 4.5, dishes[1].Price)
}

func TestQueryService_ListDishesWithRestaurant_StoreError(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := service.NewQueryService(db)

	mock.ExpectQuery(`FROM "PLATOS"`).WillReturnError(errors.New("connection refused"))

	_, err := svc.ListDishesWithRestaurant(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.ErrorTypeInternal, apperror.TypeOf(err))
}

func TestQueryService_ListCategoryCounts(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := service.NewQueryService(db)

	mock.ExpectQuery(`SELECT "CATEGORIA_PLATO" AS "categoria", COUNT\("CATEGORIA_PLATO"\) AS "cantidad" FROM "PLATOS" GROUP BY "CATEGORIA_PLATO"`).
		WillReturnRows(sqlmock.NewRows([]string{"categoria", "cantidad"}).
			AddRow("Entradas", 3).
			AddRow("Postres", 2))

	counts, err := svc.ListCategoryCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.CategoryCount{
		{Category: "Entradas", Count: 3},
		{Category: "Postres", Count: 2},
	}, counts)
}

func TestQueryService_ListCategoryCounts_EmptyTable(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := service.NewQueryService(db)

	mock.ExpectQuery(`GROUP BY "CATEGORIA_PLATO"`).
		WillReturnRows(sqlmock.NewRows([]string{"categoria", "cantidad"}))

	counts, err := svc.ListCategoryCounts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, counts)
	assert.Empty(t, counts)
}

func TestQueryService_ListRestaurantSummaries(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := service.NewQueryService(db)

	mock.ExpectQuery(`SELECT "ID_RESTAURANTE","NOMBRE_RESTAURANTE","IMAGEN_RESTAURANTE","DESCRIPCION_RESTAURANTE","UBICACION_RESTAURANTE" FROM "restaurantes"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"ID_RESTAURANTE", "NOMBRE_RESTAURANTE", "IMAGEN_RESTAURANTE", "DESCRIPCION_RESTAURANTE", "UBICACION_RESTAURANTE",
		}).AddRow(1, "La Esquina", "aW1n", "Comida típica", "Centro"))

	restaurants, err := svc.ListRestaurantSummaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.RestaurantSummary{{
		ID: 1, Name: "La Esquina", Image: "aW1n", Description: "Comida típica", Location: "Centro",
	}}, restaurants)
}

func TestQueryService_ListRestaurantNames(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := service.NewQueryService(db)

	mock.ExpectQuery(`SELECT "NOMBRE_RESTAURANTE" FROM "restaurantes"`).
		WillReturnRows(sqlmock.NewRows([]string{"NOMBRE_RESTAURANTE"}).
			AddRow("La Esquina").
			AddRow("Doña Rosa"))

	names, err := svc.ListRestaurantNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.RestaurantName{{Name: "La Esquina"}, {Name: "Doña Rosa"}}, names)
}

func TestQueryService_ListDishes(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := service.NewQueryService(db)

	mock.ExpectQuery(`SELECT \* FROM "PLATOS"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"ID_PLATO", "ID_RESTAURANTE", "CATEGORIA_PLATO", "NOMBRE_PLATO", "IMAGEN_PLATO", "DESCRIPCION_PLATO", "PRECIO_PLATO",
		}).AddRow(5, 9, "Postres", "Helado", nil, "Helado de paila", 2.25))

	dishes, err := svc.ListDishes(context.Background())
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, uint(5), dishes[0].ID)
	assert.Equal(t, uint(9), dishes[0].RestaurantID)
	assert.Nil(t, dishes[0].Restaurant)
}

func TestQueryService_ListUserCredentials(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := service.NewQueryService(db)

	mock.ExpectQuery(`SELECT "ID_USUARIO","CUENTA_USUARIO","CONTRASENIA" FROM "usuarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"ID_USUARIO", "CUENTA_USUARIO", "CONTRASENIA"}).
			AddRow(1, "ana", "secreto"))

	users, err := svc.ListUserCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.UserCredentials{{ID: 1, Account: "ana", Password: "secreto"}}, users)
}

func TestQueryService_GetUser(t *testing.T) {
	userColumns := []string{
		"ID_USUARIO", "FECHANACIMIENTO_USUARIO", "NOMBRE_USUARIO", "APELLIDO_USUARIO",
		"CORREOELECTRONICO_USUARIO", "CONTRASENIA", "Telefono_Usuario",
	}

	tests := []struct {
		name     string
		rawID    string
		setup    func(sqlmock.Sqlmock)
		wantType apperror.ErrorType
		wantErr  bool
	}{
		{
			name:  "found",
			rawID: "7",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT .* FROM "usuarios" WHERE "ID_USUARIO" = \$1`).
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow(7, "1990-05-01", "Ana", "Pérez", "ana@example.com", "secreto", "0999999999"))
			},
		},
		{
			name:  "no row",
			rawID: "99999",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM "usuarios" WHERE "ID_USUARIO" = \$1`).
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			wantErr:  true,
			wantType: apperror.ErrorTypeNotFound,
		},
		{
			name:     "negative id issues no query",
			rawID:    "-3",
			setup:    func(sqlmock.Sqlmock) {},
			wantErr:  true,
			wantType: apperror.ErrorTypeNotFound,
		},
		{
			name:     "non-numeric id issues no query",
			rawID:    "abc",
			setup:    func(sqlmock.Sqlmock) {},
			wantErr:  true,
			wantType: apperror.ErrorTypeNotFound,
		},
		{
			name:  "store failure",
			rawID: "7",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM "usuarios"`).WillReturnError(errors.New("broken pipe"))
			},
			wantErr:  true,
			wantType: apperror.ErrorTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := dbtest.New(t)
			svc := service.NewQueryService(db)
			tt.setup(mock)

			user, err := svc.GetUser(context.Background(), tt.rawID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantType, apperror.TypeOf(err))
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(7), user.ID)
			assert.Equal(t, "1990-05-01", user.BirthDate.String())
			assert.Equal(t, "Ana", user.FirstName)
			require.NotNil(t, user.LastName)
			assert.Equal(t, "Pérez", *user.LastName)
			assert.Equal(t, "secreto", user.Password)
		})
	}
}

func TestQueryService_GetRestaurantHours(t *testing.T) {
	hourColumns := []string{"DIASLABORABLES_RESTAURANTE", "HORAINICIOLABORAL_RESTAURANTE", "HORAFINLABORAL_RESTAURANTE"}

	tests := []struct {
		name     string
		rawID    string
		setup    func(sqlmock.Sqlmock)
		wantErr  bool
		wantType apperror.ErrorType
		check    func(*testing.T, *model.RestaurantHours)
	}{
		{
			name:  "open and close times",
			rawID: "3",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT "DIASLABORABLES_RESTAURANTE", to_char\("HORAINICIOLABORAL_RESTAURANTE", 'HH24:MI:SS'\) .* ` +
					`FROM "restaurantes" WHERE "ID_RESTAURANTE" = \$1`).
					WillReturnRows(sqlmock.NewRows(hourColumns).AddRow("Lunes a Viernes", "08:00:00", "22:30:00"))
			},
			check: func(t *testing.T, h *model.RestaurantHours) {
				assert.Equal(t, "Lunes a Viernes", h.WorkingDays)
				assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, h.OpeningTime)
				require.NotNil(t, h.ClosingTime)
				assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, *h.ClosingTime)
			},
		},
		{
			name:  "no closing time",
			rawID: "4",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM "restaurantes" WHERE "ID_RESTAURANTE" = \$1`).
					WillReturnRows(sqlmock.NewRows(hourColumns).AddRow("Sábado", "10:00:00", nil))
			},
			check: func(t *testing.T, h *model.RestaurantHours) {
				assert.Equal(t, "10:00:00", h.OpeningTime)
				assert.Nil(t, h.ClosingTime)
			},
		},
		{
			name:  "no row",
			rawID: "404",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM "restaurantes"`).WillReturnRows(sqlmock.NewRows(hourColumns))
			},
			wantErr:  true,
			wantType: apperror.ErrorTypeNotFound,
		},
		{
			name:     "non-numeric id is a bad request",
			rawID:    "uno",
			setup:    func(sqlmock.Sqlmock) {},
			wantErr:  true,
			wantType: apperror.ErrorTypeBadRequest,
		},
		{
			name:     "numeric prefix is a bad request",
			rawID:    "12abc",
			setup:    func(sqlmock.Sqlmock) {},
			wantErr:  true,
			wantType: apperror.ErrorTypeBadRequest,
		},
		{
			name:     "negative id is not found",
			rawID:    "-5",
			setup:    func(sqlmock.Sqlmock) {},
			wantErr:  true,
			wantType: apperror.ErrorTypeNotFound,
		},
		{
			name:     "id beyond int64 is not found",
			rawID:    "99999999999999999999",
			setup:    func(sqlmock.Sqlmock) {},
			wantErr:  true,
			wantType: apperror.ErrorTypeNotFound,
		},
		{
			name:  "signed id is looked up",
			rawID: "+7",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM "restaurantes" WHERE "ID_RESTAURANTE" = \$1`).
					WillReturnRows(sqlmock.NewRows(hourColumns).AddRow("Domingo", "12:00:00", "18:00:00"))
			},
			check: func(t *testing.T, h *model.RestaurantHours) {
				assert.Equal(t, "Domingo", h.WorkingDays)
			},
		},
		{
			name:  "id beyond 32 bits falls through to not found",
			rawID: "4294967296",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM "restaurantes" WHERE "ID_RESTAURANTE" = \$1`).
					WillReturnRows(sqlmock.NewRows(hourColumns))
			},
			wantErr:  true,
			wantType: apperror.ErrorTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := dbtest.New(t)
			svc := service.NewQueryService(db)
			tt.setup(mock)

			hours, err := svc.GetRestaurantHours(context.Background(), tt.rawID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantType, apperror.TypeOf(err))
				return
			}
			require.NoError(t, err)
			tt.check(t, hours)
		})
	}
}
