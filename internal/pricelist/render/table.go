package render

import (
	"strconv"

	"github.com/shandysiswandi/pricelist/internal/pricelist/entity"
)

// Column titles shared by the terminal grid and the HTML snapshot.
const (
	ColumnNo         = "№"
	ColumnName       = "Наименование"
	ColumnPrice      = "Цена"
	ColumnWeight     = "Вес"
	ColumnFile       = "Файл"
	ColumnPricePerKg = "Цена за кг."
)

// Table renders rows for both outputs.
type Table struct{}

func NewTable() *Table {
	return &Table{}
}

// FormatPerKg prints a price per kg without trailing zeros: 12.5, 40, 3.33.
func FormatPerKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rowCells(row entity.PriceRow) []string {
	return []string{row.ProductName, row.Price, row.Weight, row.SourceFile, FormatPerKg(row.PricePerKg)}
}
