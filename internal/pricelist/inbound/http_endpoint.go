package inbound

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkgerror"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/pricelist/internal/pricelist/entity"
	"github.com/shandysiswandi/pricelist/internal/pricelist/usecase"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Search(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Search(ctx, usecase.SearchQuery{
		Text:     query.Get("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(result.Hits))
	for _, hit := range result.Hits {
		rows = append(rows, toHTTPRow(hit))
	}

	return SearchResponse{
		Query:    result.Query,
		Rows:     rows,
		page:     result.Page,
		pageSize: result.PageSize,
		total:    result.Total,
	}, nil
}

func (h *HTTPEndpoint) Report(ctx context.Context, r *http.Request) (any, error) {
	report, err := h.uc.Report(ctx)
	if err != nil {
		return nil, err
	}

	return toReportResponse(report), nil
}

// Export streams the same HTML snapshot the terminal session writes to disk.
func (h *HTTPEndpoint) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.uc.Export(r.Context(), &buf); err != nil {
		pkgrouter.WriteError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.WarnContext(r.Context(), "failed to write html snapshot", "error", err)
	}
}

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := defaultPageSize

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page"))
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page_size"))
		}
		pageSize = min(value, maxPageSize)
	}

	return page, pageSize, nil
}

func toHTTPRow(hit usecase.SearchHit) Row {
	return Row{
		No:          hit.No,
		ProductName: hit.Row.ProductName,
		Price:       hit.Row.Price,
		Weight:      hit.Row.Weight,
		SourceFile:  hit.Row.SourceFile,
		PricePerKg:  hit.Row.PricePerKg,
	}
}

func toReportResponse(report entity.LoadReport) ReportResponse {
	totalLines, parsedOK, parseErr := report.Totals()

	files := make([]FileReport, 0, len(report.Files))
	for _, f := range report.Files {
		files = append(files, FileReport{
			Name:       f.Name,
			Status:     f.Status,
			TotalLines: f.TotalLines,
			ParsedOK:   f.ParsedOK,
			ParseErr:   f.ParseErr,
			Err:        f.Err,
		})
	}

	return ReportResponse{
		LoadID:     strconv.FormatInt(report.ID, 10),
		Dir:        report.Dir,
		StartedAt:  report.StartedAt,
		EndedAt:    report.EndedAt,
		TotalLines: totalLines,
		ParsedOK:   parsedOK,
		ParseErr:   parseErr,
		Files:      files,
	}
}
