package route

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pasacalle/config"
	"pasacalle/controller"
	"pasacalle/utils"
)

// NewRouter builds the engine with middleware, API routes and the static
// fallback.
func NewRouter(cfg *config.ServerConfig, h *controller.Handler, log *zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(utils.RequestLogger(log), utils.Recovery(log))
	router.Use(cors.New(utils.CORSConfig(cfg.AllowedOrigins)))

	RestaurantRoutes(router, h)
	router.NoRoute(utils.StaticFallback(cfg.PublicDir))
	return router
}

func RestaurantRoutes(router *gin.Engine, h *controller.Handler) {
	router.GET("/comidas", h.GetDishesWithRestaurant)
	router.GET("/categorias", h.GetCategories)
	router.GET("/restaurantes", h.GetRestaurants)
	router.GET("/nombreRestaurantes", h.GetRestaurantNames)
	router.POST("/crearPlato", h.CreateDish)
	router.GET("/obtenerPlatos", h.GetDishes)
	router.POST("/importarPlatos", h.ImportDishes)
	router.GET("/exportarPlatos", h.ExportDishes)

	router.GET("/usuarios", h.GetUsers)
	router.GET("/usuarios/:id", h.GetUserByID)
	router.PUT("/usuarios/:id", h.UpdateUser)
	router.POST("/usuarios", h.CreateUser)

	router.GET("/horarios/:idRestaurante", h.GetRestaurantHours)
	router.POST("/reserva", h.CreateReservation)
}
