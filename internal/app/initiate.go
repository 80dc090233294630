package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkglog"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkguid"
)

const defaultConfigPath = "./config/config.yaml"

func configDefaults() map[string]any {
	return map[string]any{
		"tz":                  "UTC",
		"log.level":           "info",
		"prices.dir":          "./data",
		"prices.pattern":      "price",
		"prices.delimiter":    ",",
		"prices.encoding":     "utf-8",
		"columns.name":        "название,продукт,товар,наименование",
		"columns.price":       "цена,розница",
		"columns.weight":      "фасовка,масса,вес",
		"export.file":         "output.html",
		"server.enabled":      false,
		"server.address.http": ":8080",
		"snowflake.node":      -1,
	}
}

func (a *App) initConfig() {
	// logs go to stderr, stdout belongs to the terminal session
	pkglog.InitLogging(os.Stderr, "info")

	path := os.Getenv("PRICELIST_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := pkgconfig.NewViper(path, configDefaults())
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.InitLogging(os.Stderr, cfg.GetString("log.level"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(pkgroutine.DefaultMaxGoroutine)
	a.correlationIDs = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake(a.config.GetInt("snowflake.node"))
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.loadIDs = sf
}

func (a *App) initHTTPServer() {
	if !a.config.GetBool("server.enabled") {
		return
	}

	a.router = pkgrouter.NewRouter(a.correlationIDs)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	if a.httpServer != nil {
		a.closerFn["HTTP Server"] = func(ctx context.Context) error {
			return a.httpServer.Shutdown(ctx)
		}
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
