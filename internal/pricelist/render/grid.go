package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shandysiswandi/pricelist/internal/pricelist/usecase"
)

// RenderGrid writes search hits as a bordered grid with a line between rows.
func (Table) RenderGrid(w io.Writer, hits []usecase.SearchHit) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{ColumnNo, ColumnName, ColumnPrice, ColumnWeight, ColumnFile, ColumnPricePerKg})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)

	for _, hit := range hits {
		table.Append(append([]string{strconv.Itoa(hit.No)}, rowCells(hit.Row)...))
	}

	table.Render()
	return nil
}
