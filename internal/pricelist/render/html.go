package render

import (
	"html/template"
	"io"

	"github.com/shandysiswandi/pricelist/internal/pricelist/entity"
)

var snapshotTemplate = template.Must(template.New("snapshot").Parse(`<html><body><table>
<thead>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table></body></html>
`))

type snapshot struct {
	Headers []string
	Rows    [][]string
}

// RenderHTML writes rows, in the given order, as an HTML document.
func (Table) RenderHTML(w io.Writer, rows []entity.PriceRow) error {
	data := snapshot{
		Headers: []string{ColumnName, ColumnPrice, ColumnWeight, ColumnFile, ColumnPricePerKg},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, rowCells(row))
	}

	return snapshotTemplate.Execute(w, data)
}
