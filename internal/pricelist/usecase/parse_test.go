package usecase

import (
	"errors"
	"strings"
	"testing"
)

func TestPricePerKg(t *testing.T) {
	tests := []struct {
		price, weight string
		want          float64
	}{
		{"100", "3", 33.33},
		{"10", "4", 2.5},
		{" 50 ", "0.5 ", 100},
		{"2.675", "1", 2.68},
		{"-10", "4", -2.5},
		{"1e3", "2", 500},
		{"0", "1", 0},
	}

	for _, tt := range tests {
		got, err := pricePerKg(tt.price, tt.weight)
		if err != nil {
			t.Fatalf("pricePerKg(%q, %q) err = %v", tt.price, tt.weight, err)
		}
		if got != tt.want {
			t.Fatalf("pricePerKg(%q, %q) = %v, want %v", tt.price, tt.weight, got, tt.want)
		}
	}
}

func TestPricePerKgRejects(t *testing.T) {
	if _, err := pricePerKg("1", "0"); !errors.Is(err, errZeroWeight) {
		t.Fatalf("expected zero weight error, got %v", err)
	}
	if _, err := pricePerKg("1", "0.00"); !errors.Is(err, errZeroWeight) {
		t.Fatalf("expected zero weight error for 0.00, got %v", err)
	}
	for _, pair := range [][2]string{{"abc", "1"}, {"1", "kg"}, {"", "1"}, {"1", ""}} {
		if _, err := pricePerKg(pair[0], pair[1]); err == nil {
			t.Fatalf("expected error for %q/%q", pair[0], pair[1])
		}
	}
}

func TestResolveColumns(t *testing.T) {
	idx, err := resolveColumns([]string{"\ufeffНазвание", " ЦЕНА ", "код", "Вес", "Наименование"}, DefaultColumns())
	if err != nil {
		t.Fatalf("resolveColumns: %v", err)
	}
	if idx.name != 4 || idx.price != 1 || idx.weight != 3 {
		t.Fatalf("unexpected index: %+v", idx)
	}

	_, err = resolveColumns([]string{"товар", "стоимость"}, DefaultColumns())
	if !errors.Is(err, errMissingRole) {
		t.Fatalf("expected missing role error, got %v", err)
	}
	if !strings.Contains(err.Error(), "price, weight") {
		t.Fatalf("expected missing roles listed, got %q", err.Error())
	}
}

func TestResolveColumnsCustomAliases(t *testing.T) {
	cols := Columns{Name: []string{"Product"}, Price: []string{"Price"}, Weight: []string{"Weight"}}
	idx, err := resolveColumns([]string{"weight", "product", "price"}, cols)
	if err != nil {
		t.Fatalf("resolveColumns: %v", err)
	}
	if idx.name != 1 || idx.price != 2 || idx.weight != 0 {
		t.Fatalf("unexpected index: %+v", idx)
	}
}

func TestRowFilterMatches(t *testing.T) {
	filter := RowFilter{Text: "ЁЖ"}
	if !filter.Matches(rowNamed("Морской ёж")) {
		t.Fatal("expected case-insensitive match")
	}
	if filter.Matches(rowNamed("Ежевика")) {
		t.Fatal("did not expect match")
	}
	if !(RowFilter{}).Matches(rowNamed("anything")) {
		t.Fatal("empty filter must match every row")
	}
}

func TestLookupEncodingUnknown(t *testing.T) {
	if _, err := LookupEncoding("klingon"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}
