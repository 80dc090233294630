package inbound

import (
	"context"
	"io"
	"net/http"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/pricelist/internal/pricelist/entity"
	"github.com/shandysiswandi/pricelist/internal/pricelist/usecase"
)

type uc interface {
	Search(ctx context.Context, query usecase.SearchQuery) (usecase.SearchResult, error)
	Export(ctx context.Context, w io.Writer) error
	ExportFile(ctx context.Context, path string) error
	Report(ctx context.Context) (entity.LoadReport, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/prices", end.Search) // ?q=&page=&page_size=
	r.GET("/prices/report", end.Report)
	r.Handle(http.MethodGet, "/prices/export", http.HandlerFunc(end.Export))
}
