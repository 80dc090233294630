// Package app is the composition root: it reads configuration, builds the
// shared libraries and the pricelist module, and owns the process lifecycle.
package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkguid"
	"github.com/shandysiswandi/pricelist/internal/pricelist"
)

type App struct {
	// ctx is canceled on a termination signal or by Stop.
	ctx    context.Context
	cancel context.CancelFunc

	config pkgconfig.Config

	correlationIDs pkguid.StringID
	loadIDs        pkguid.NumberID
	goroutine      *pkgroutine.Manager

	prices *pricelist.Module

	// both nil unless server.enabled is set
	router     *pkgrouter.Router
	httpServer *http.Server

	closerFn map[string]func(context.Context) error
}

// New builds the application and loads the configured price directory.
// Configuration errors are fatal.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{ctx: ctx, cancel: cancel}

	for _, step := range []func(){
		a.initConfig,
		a.initLibraries,
		a.initHTTPServer,
		a.initModules,
		a.initClosers,
	} {
		step()
	}

	return a
}
