package inbound

import "github.com/shandysiswandi/pricelist/internal/pricelist/entity"

type Row struct {
	No          int     `json:"no"`
	ProductName string  `json:"product_name"`
	Price       string  `json:"price"`
	Weight      string  `json:"weight"`
	SourceFile  string  `json:"source_file"`
	PricePerKg  float64 `json:"price_per_kg"`
}

type SearchResponse struct {
	Query    string `json:"query"`
	Rows     []Row  `json:"rows"`
	page     int
	pageSize int
	total    int
}

func (r SearchResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}

type FileReport struct {
	Name       string            `json:"name"`
	Status     entity.FileStatus `json:"status"`
	TotalLines int64             `json:"total_lines"`
	ParsedOK   int64             `json:"parsed_ok"`
	ParseErr   int64             `json:"parse_err"`
	Err        string            `json:"error,omitempty"`
}

// ReportResponse carries the load ID as a string; Snowflake IDs exceed the
// integer precision of JSON numbers in browsers.
type ReportResponse struct {
	LoadID     string       `json:"load_id"`
	Dir        string       `json:"dir"`
	StartedAt  int64        `json:"started_at"`
	EndedAt    int64        `json:"ended_at"`
	TotalLines int64        `json:"total_lines"`
	ParsedOK   int64        `json:"parsed_ok"`
	ParseErr   int64        `json:"parse_err"`
	Files      []FileReport `json:"files"`
}
