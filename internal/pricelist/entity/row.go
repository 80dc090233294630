package entity

// PriceRow is one accepted line of a price list. Price and Weight keep the
// cell text as read; PricePerKg is price/weight rounded to 2 decimals.
type PriceRow struct {
	ProductName string
	Price       string
	Weight      string
	SourceFile  string
	PricePerKg  float64
}
