package pricelist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkgerror"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkguid"
	"github.com/shandysiswandi/pricelist/internal/pricelist/inbound"
	"github.com/shandysiswandi/pricelist/internal/pricelist/render"
	"github.com/shandysiswandi/pricelist/internal/pricelist/store"
	"github.com/shandysiswandi/pricelist/internal/pricelist/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	// Router is nil when the HTTP API is disabled.
	Router *pkgrouter.Router
	ID     pkguid.NumberID
	In     io.Reader
	Out    io.Writer
}

// Module is the wired price-list feature: a loaded store, the terminal
// session and, optionally, the HTTP endpoints.
type Module struct {
	uc      *usecase.Usecase
	session *inbound.Session
	dir     string
}

func New(dep Dependency) (*Module, error) {
	reader, err := readerConfig(dep.Config)
	if err != nil {
		return nil, err
	}

	table := render.NewTable()
	uc := usecase.New(usecase.Dependency{
		Store:    store.NewInMemoryStore(),
		Renderer: table,
		ID:       dep.ID,
		Reader:   reader,
	})

	if dep.Router != nil {
		inbound.RegisterHTTPEndpoint(dep.Router, uc)
	}

	return &Module{
		uc:      uc,
		session: inbound.NewSession(uc, table, dep.In, dep.Out, dep.Config.GetString("export.file")),
		dir:     dep.Config.GetString("prices.dir"),
	}, nil
}

// Load reads the configured price directory. A missing directory is logged
// and leaves the collection empty.
func (m *Module) Load(ctx context.Context) {
	if _, err := m.uc.Load(ctx, m.dir); err != nil {
		slog.ErrorContext(ctx, "failed to load price lists, continuing with empty data", "dir", m.dir, "error", err)
	}
}

// Run blocks in the terminal session until the user exits.
func (m *Module) Run(ctx context.Context) error {
	return m.session.Run(ctx)
}

func readerConfig(cfg pkgconfig.Config) (usecase.ReaderConfig, error) {
	enc, err := usecase.LookupEncoding(cfg.GetString("prices.encoding"))
	if err != nil {
		return usecase.ReaderConfig{}, pkgerror.WrapBusiness(err, "prices.encoding", pkgerror.CodeUnsupported)
	}

	var delimiter rune
	if raw := cfg.GetString("prices.delimiter"); raw != "" {
		r, size := utf8.DecodeRuneInString(raw)
		if r == utf8.RuneError || size != len(raw) {
			return usecase.ReaderConfig{}, pkgerror.NewInvalidInput(errors.New("prices.delimiter must be a single character"))
		}
		delimiter = r
	}

	return usecase.ReaderConfig{
		Pattern:   cfg.GetString("prices.pattern"),
		Delimiter: delimiter,
		Encoding:  enc,
		Columns: usecase.Columns{
			Name:   cfg.GetArray("columns.name"),
			Price:  cfg.GetArray("columns.price"),
			Weight: cfg.GetArray("columns.weight"),
		},
	}, nil
}
