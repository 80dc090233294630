package usecase

import (
	"cmp"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkgerror"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkguid"
	"github.com/shandysiswandi/pricelist/internal/pricelist/entity"
)

type Store interface {
	AppendRows(ctx context.Context, rows []entity.PriceRow) error
	ListRows(ctx context.Context, filter RowFilter) ([]entity.PriceRow, error)
	SaveReport(ctx context.Context, report entity.LoadReport) error
	GetReport(ctx context.Context) (entity.LoadReport, error)
}

type Renderer interface {
	RenderHTML(w io.Writer, rows []entity.PriceRow) error
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store    Store
	Renderer Renderer
	Clock    Clock
	ID       pkguid.NumberID
	Reader   ReaderConfig
}

type Usecase struct {
	store    Store
	renderer Renderer
	clock    Clock
	id       pkguid.NumberID
	reader   ReaderConfig
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	reader := dep.Reader
	if reader.Pattern == "" {
		reader.Pattern = "price"
	}
	if reader.Delimiter == 0 {
		reader.Delimiter = ','
	}
	if len(reader.Columns.Name) == 0 && len(reader.Columns.Price) == 0 && len(reader.Columns.Weight) == 0 {
		reader.Columns = DefaultColumns()
	}

	return &Usecase{
		store:    dep.Store,
		renderer: dep.Renderer,
		clock:    clock,
		id:       dep.ID,
		reader:   reader,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Load reads every candidate price list in dir into the store.
//
// Problems with single files or rows are logged and recorded in the
// returned report; only an unreadable directory is returned as an error.
func (u *Usecase) Load(ctx context.Context, dir string) (entity.LoadReport, error) {
	if u.store == nil {
		return entity.LoadReport{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	report := entity.LoadReport{
		Dir:       dir,
		StartedAt: u.clock.Now().Unix(),
	}
	if u.id != nil {
		report.ID = u.id.Generate()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.ErrorContext(ctx, "price directory is not readable", "dir", dir, "error", err)
		report.EndedAt = u.clock.Now().Unix()
		if saveErr := u.store.SaveReport(ctx, report); saveErr != nil {
			return report, normalizeErr(saveErr)
		}
		if errors.Is(err, fs.ErrNotExist) {
			return report, pkgerror.WrapBusiness(err, "price directory not found", pkgerror.CodeNotFound)
		}
		return report, pkgerror.NewServer(err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !u.isCandidate(entry.Name()) {
			continue
		}

		rows, fileReport := u.loadFile(ctx, filepath.Join(dir, entry.Name()), entry.Name())
		if len(rows) > 0 {
			if err := u.store.AppendRows(ctx, rows); err != nil {
				return report, normalizeErr(err)
			}
		}
		report.Files = append(report.Files, fileReport)
	}

	report.EndedAt = u.clock.Now().Unix()
	if err := u.store.SaveReport(ctx, report); err != nil {
		return report, normalizeErr(err)
	}

	totalLines, parsedOK, parseErr := report.Totals()
	slog.InfoContext(ctx, "price lists loaded",
		"load_id", report.ID,
		"dir", dir,
		"files", len(report.Files),
		"lines", totalLines,
		"rows", parsedOK,
		"rejected", parseErr,
	)

	return report, nil
}

func (u *Usecase) isCandidate(name string) bool {
	return strings.Contains(fold(name), fold(u.reader.Pattern))
}

func (u *Usecase) loadFile(ctx context.Context, path, name string) ([]entity.PriceRow, entity.FileReport) {
	fileReport := entity.FileReport{Name: name, Status: entity.FileStatusLoaded}

	fail := func(status entity.FileStatus, err error) {
		fileReport.Status = status
		fileReport.Err = err.Error()
		slog.WarnContext(ctx, "price list not loaded", "file", name, "status", status, "error", err)
	}

	f, err := os.Open(path)
	if err != nil {
		fail(entity.FileStatusFailed, err)
		return nil, fileReport
	}
	defer f.Close()

	var src recordSource
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		src, err = newSheetSource(f)
		if err != nil {
			fail(entity.FileStatusFailed, pkgerror.WrapBusiness(err, "unreadable workbook", pkgerror.CodeUnsupported))
			return nil, fileReport
		}
	} else {
		src = newCSVSource(f, u.reader.Encoding, u.reader.Delimiter)
	}

	var rows []entity.PriceRow
	totalLines, parsedOK, parseErr, err := parseRecords(ctx, src, name, u.reader.Columns, func(row entity.PriceRow) {
		rows = append(rows, row)
	})

	fileReport.TotalLines = totalLines
	fileReport.ParsedOK = parsedOK
	fileReport.ParseErr = parseErr

	switch {
	case errors.Is(err, errEmptyFile), errors.Is(err, errMissingRole):
		fail(entity.FileStatusSkipped, err)
	case err != nil:
		fail(entity.FileStatusFailed, pkgerror.WrapBusiness(err, "malformed price list", pkgerror.CodeMalformed))
	}

	return rows, fileReport
}

// Search returns rows whose product name contains the query text, ignoring
// case, ordered by price per kg. PageSize 0 returns every hit.
func (u *Usecase) Search(ctx context.Context, query SearchQuery) (SearchResult, error) {
	if query.Page < 0 || query.PageSize < 0 {
		return SearchResult{}, pkgerror.NewInvalidInput(errors.New("invalid pagination"))
	}

	rows, err := u.store.ListRows(ctx, RowFilter{Text: query.Text})
	if err != nil {
		return SearchResult{}, normalizeErr(err)
	}

	slices.SortStableFunc(rows, func(a, b entity.PriceRow) int {
		return cmp.Compare(a.PricePerKg, b.PricePerKg)
	})

	start, end := 0, len(rows)
	page := query.Page
	if query.PageSize > 0 {
		if page == 0 {
			page = 1
		}
		start = len(rows)
		if page-1 < len(rows)/query.PageSize+1 {
			start = min((page-1)*query.PageSize, len(rows))
		}
		end = start + min(query.PageSize, len(rows)-start)
	}

	hits := make([]SearchHit, 0, end-start)
	for i := start; i < end; i++ {
		hits = append(hits, SearchHit{No: i + 1, Row: rows[i]})
	}

	return SearchResult{
		Query:    query.Text,
		Hits:     hits,
		Page:     page,
		PageSize: query.PageSize,
		Total:    len(rows),
	}, nil
}

// Export renders every row, ordered by product name, as an HTML table.
func (u *Usecase) Export(ctx context.Context, w io.Writer) error {
	if u.renderer == nil {
		return pkgerror.NewServer(errors.New("missing dependency"))
	}

	rows, err := u.store.ListRows(ctx, RowFilter{})
	if err != nil {
		return normalizeErr(err)
	}

	slices.SortStableFunc(rows, func(a, b entity.PriceRow) int {
		return strings.Compare(a.ProductName, b.ProductName)
	})

	if err := u.renderer.RenderHTML(w, rows); err != nil {
		return pkgerror.NewServer(err)
	}

	return nil
}

// ExportFile writes the HTML snapshot to path, replacing any existing file.
func (u *Usecase) ExportFile(ctx context.Context, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return pkgerror.NewServer(err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = pkgerror.NewServer(closeErr)
		}
	}()

	if err := u.Export(ctx, f); err != nil {
		return err
	}

	slog.InfoContext(ctx, "price snapshot exported", "file", path)
	return nil
}

// Report returns the report of the last Load call.
func (u *Usecase) Report(ctx context.Context) (entity.LoadReport, error) {
	report, err := u.store.GetReport(ctx)
	if err != nil {
		return entity.LoadReport{}, mapStoreErr(err)
	}
	return report, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("no price lists loaded yet", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
