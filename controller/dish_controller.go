package controller

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pasacalle/service"
)

const (
	imageField = "logo"
	sheetField = "archivo"
	xlsxMIME   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// GetDishesWithRestaurant serves GET /comidas.
func (h *Handler) GetDishesWithRestaurant(c *gin.Context) {
	dishes, err := h.queries.ListDishesWithRestaurant(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to get dishes")
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// GetCategories serves GET /categorias.
func (h *Handler) GetCategories(c *gin.Context) {
	counts, err := h.queries.ListCategoryCounts(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to get categories")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetDishes serves GET /obtenerPlatos.
func (h *Handler) GetDishes(c *gin.Context) {
	dishes, err := h.queries.ListDishes(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to get dish rows")
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// CreateDish serves POST /crearPlato. Only the uploaded logo is used; the
// rest of the row is the fixed demonstration dish.
func (h *Handler) CreateDish(c *gin.Context) {
	mr, err := c.Request.MultipartReader()
	if err != nil {
		h.respondError(c, err, "failed to read dish upload")
		return
	}

	image, err := service.ReadUploadedImage(mr, imageField)
	if err != nil {
		h.respondError(c, err, "failed to ingest dish image")
		return
	}

	dish, err := h.mutations.CreateDish(c.Request.Context(), image)
	if err != nil {
		h.respondError(c, err, "failed to create dish")
		return
	}

	h.log.Info().
		Uint("dish_id", dish.ID).
		Int("image_bytes", len(image)).
		Msg("dish created")
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Plato creado exitosamente"})
}

// ImportDishes serves POST /importarPlatos: one dish per row of the
// uploaded workbook. Invalid rows are skipped and listed in the answer.
func (h *Handler) ImportDishes(c *gin.Context) {
	fileHeader, err := c.FormFile(sheetField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Archivo Excel requerido"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err, "failed to open uploaded workbook")
		return
	}
	defer file.Close()

	dishes, skipped, err := service.ParseDishSheet(file)
	if err != nil {
		msg := "Archivo Excel no válido"
		if errors.Is(err, service.ErrEmptySheet) {
			msg = "El archivo debe tener al menos una fila de datos"
		}
		h.log.Warn().Err(err).Str("file", fileHeader.Filename).Msg("rejected dish workbook")
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	for _, s := range skipped {
		h.log.Warn().Int("row", s.Row).Str("reason", s.Reason).Msg("dish row skipped")
	}

	if len(dishes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "No se encontraron filas válidas",
			"omitidas": skipped,
		})
		return
	}

	n, err := h.mutations.CreateDishes(c.Request.Context(), dishes)
	if err != nil {
		h.respondError(c, err, "failed to import dishes")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensaje":  "Platos importados exitosamente",
		"cantidad": n,
		"omitidas": skipped,
	})
}

// ExportDishes serves GET /exportarPlatos as an xlsx download.
func (h *Handler) ExportDishes(c *gin.Context) {
	dishes, err := h.queries.ListDishes(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to get dishes for export")
		return
	}

	var buf bytes.Buffer
	if err := service.WriteDishSheet(&buf, dishes); err != nil {
		h.respondError(c, err, "failed to build dish workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="platos.xlsx"`)
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}
