package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/pricelist/internal/pricelist/entity"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	errEmptyFile   = errors.New("file has no header row")
	errZeroWeight  = errors.New("weight is zero")
	errMissingRole = errors.New("required column not found")
)

// recordSource yields header and data records one at a time.
type recordSource interface {
	Read() ([]string, error)
}

func newCSVSource(r io.Reader, enc encoding.Encoding, delimiter rune) recordSource {
	if enc == nil {
		enc = unicode.UTF8
	}

	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return reader
}

type sheetSource struct {
	rows [][]string
	next int
}

func (s *sheetSource) Read() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++
	return row, nil
}

// newSheetSource reads the first sheet of an xlsx workbook.
func newSheetSource(r io.Reader) (recordSource, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return &sheetSource{rows: rows}, nil
}

// LookupEncoding resolves a WHATWG encoding label such as "utf-8" or
// "windows-1251".
func LookupEncoding(label string) (encoding.Encoding, error) {
	if strings.TrimSpace(label) == "" {
		return unicode.UTF8, nil
	}
	return htmlindex.Get(label)
}

// columnIndex holds the resolved position of each role, -1 when absent.
type columnIndex struct {
	name, price, weight int
}

func normalizeHeader(header string) string {
	return fold(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
}

func aliasSet(aliases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(aliases))
	for _, alias := range aliases {
		set[normalizeHeader(alias)] = struct{}{}
	}
	return set
}

// resolveColumns maps headers to roles. A header is tried as name, then
// price, then weight; later headers override earlier ones for the same role.
func resolveColumns(headers []string, cols Columns) (columnIndex, error) {
	names, prices, weights := aliasSet(cols.Name), aliasSet(cols.Price), aliasSet(cols.Weight)
	idx := columnIndex{name: -1, price: -1, weight: -1}

	for i, header := range headers {
		key := normalizeHeader(header)
		if _, ok := names[key]; ok {
			idx.name = i
		} else if _, ok := prices[key]; ok {
			idx.price = i
		} else if _, ok := weights[key]; ok {
			idx.weight = i
		}
	}

	var missing []string
	if idx.name < 0 {
		missing = append(missing, string(entity.RoleName))
	}
	if idx.price < 0 {
		missing = append(missing, string(entity.RolePrice))
	}
	if idx.weight < 0 {
		missing = append(missing, string(entity.RoleWeight))
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", errMissingRole, strings.Join(missing, ", "))
	}

	return idx, nil
}

// parseRecords reads the header, then every data record of src. Rows that
// fail to parse are logged and counted; a read error stops the file.
func parseRecords(ctx context.Context, src recordSource, file string, cols Columns, onRow func(row entity.PriceRow)) (int64, int64, int64, error) {
	var totalLines int64
	var parsedOK int64
	var parseErr int64

	headers, err := src.Read()
	if errors.Is(err, io.EOF) {
		return 0, 0, 0, errEmptyFile
	}
	if err != nil {
		return 0, 0, 0, err
	}

	idx, err := resolveColumns(headers, cols)
	if err != nil {
		return 0, 0, 0, err
	}

	for {
		record, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.WarnContext(ctx, "failed to read price record", "file", file, "error", err)
			return totalLines, parsedOK, parseErr, err
		}

		totalLines++
		row, err := parseRow(record, idx, file)
		if err != nil {
			parseErr++
			slog.WarnContext(ctx, "failed to parse price record", "file", file, "line", totalLines+1, "error", err)
			continue
		}

		parsedOK++
		onRow(row)
	}

	return totalLines, parsedOK, parseErr, nil
}

func parseRow(record []string, idx columnIndex, file string) (entity.PriceRow, error) {
	name := field(record, idx.name)
	price := field(record, idx.price)
	weight := field(record, idx.weight)

	perKg, err := pricePerKg(price, weight)
	if err != nil {
		return entity.PriceRow{}, err
	}

	return entity.PriceRow{
		ProductName: name,
		Price:       price,
		Weight:      weight,
		SourceFile:  file,
		PricePerKg:  perKg,
	}, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// pricePerKg returns price/weight rounded half away from zero to 2 places.
func pricePerKg(price, weight string) (float64, error) {
	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", price, err)
	}

	w, err := decimal.NewFromString(strings.TrimSpace(weight))
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", weight, err)
	}
	if w.IsZero() {
		return 0, errZeroWeight
	}

	return p.Div(w).Round(2).InexactFloat64(), nil
}
