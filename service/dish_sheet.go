package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"pasacalle/model"
)

// DishSheetHeader is the first row of an import or export workbook.
var DishSheetHeader = []string{
	"ID_RESTAURANTE",
	"CATEGORIA_PLATO",
	"NOMBRE_PLATO",
	"PRECIO_PLATO",
	"DESCRIPCION_PLATO",
}

const defaultDishDescription = "-"

var ErrEmptySheet = errors.New("workbook must have a header and at least one data row")

// SkippedRow explains why a sheet row was skipped. Row is 1-based as shown
// by spreadsheet tools.
type SkippedRow struct {
	Row    int    `json:"fila"`
	Reason string `json:"motivo"`
}

// ParseDishSheet reads dishes from the first sheet of an xlsx workbook.
// Invalid rows are skipped and reported; the error is reserved for an
// unreadable or empty workbook.
func ParseDishSheet(r io.Reader) ([]model.Dish, []SkippedRow, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptySheet
	}

	var dishes []model.Dish
	var skipped []SkippedRow
	for i, row := range rows[1:] {
		rowNum := i + 2
		dish, reason := parseDishRow(row)
		if reason != "" {
			skipped = append(skipped, SkippedRow{Row: rowNum, Reason: reason})
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, skipped, nil
}

func parseDishRow(row []string) (model.Dish, string) {
	if len(row) < 4 {
		return model.Dish{}, "incomplete row"
	}

	restaurantID, _ := parseID(row[0])
	if restaurantID == 0 {
		return model.Dish{}, fmt.Sprintf("invalid restaurant id %q", row[0])
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil || price < 0 {
		return model.Dish{}, fmt.Sprintf("invalid price %q", row[3])
	}

	name := strings.TrimSpace(row[2])
	if name == "" {
		return model.Dish{}, "empty dish name"
	}

	description := defaultDishDescription
	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		description = strings.TrimSpace(row[4])
	}

	return model.Dish{
		RestaurantID: restaurantID,
		Category:     strings.TrimSpace(row[1]),
		Name:         name,
		Description:  description,
		Price:        price,
	}, ""
}

// WriteDishSheet writes dishes in the import layout. Images are left out.
func WriteDishSheet(w io.Writer, dishes []model.Dish) error {
	xl := excelize.NewFile()
	defer xl.Close()

	sheet := xl.GetSheetName(0)
	header := make([]interface{}, len(DishSheetHeader))
	for i, h := range DishSheetHeader {
		header[i] = h
	}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, d := range dishes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{d.RestaurantID, d.Category, d.Name, d.Price, d.Description}
		if err := xl.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write dish %d: %w", d.ID, err)
		}
	}

	if _, err := xl.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
