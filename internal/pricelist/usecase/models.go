package usecase

import (
	"strings"

	"github.com/shandysiswandi/pricelist/internal/pricelist/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
)

// Columns holds the header aliases recognised for each role.
type Columns struct {
	Name   []string
	Price  []string
	Weight []string
}

// DefaultColumns returns the aliases used by the supplier price lists.
func DefaultColumns() Columns {
	return Columns{
		Name:   []string{"название", "продукт", "товар", "наименование"},
		Price:  []string{"цена", "розница"},
		Weight: []string{"фасовка", "масса", "вес"},
	}
}

// ReaderConfig controls which files are picked up and how they are decoded.
type ReaderConfig struct {
	// Pattern is matched case-insensitively against file names.
	Pattern   string
	Delimiter rune
	// Encoding decodes CSV bytes; nil means UTF-8.
	Encoding encoding.Encoding
	Columns  Columns
}

type SearchQuery struct {
	Text     string
	Page     int
	PageSize int
}

// SearchHit is a matching row with its 1-based position in the sorted result.
type SearchHit struct {
	No  int
	Row entity.PriceRow
}

type SearchResult struct {
	Query    string
	Hits     []SearchHit
	Page     int
	PageSize int
	Total    int
}

// RowFilter selects rows whose product name contains Text, ignoring case.
type RowFilter struct {
	Text string
}

func (f RowFilter) Matches(row entity.PriceRow) bool {
	if f.Text == "" {
		return true
	}

	return strings.Contains(fold(row.ProductName), fold(f.Text))
}

func fold(s string) string {
	return cases.Fold().String(s)
}
