package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/pricelist/internal/pricelist"
)

func (a *App) initModules() {
	prices, err := pricelist.New(pricelist.Dependency{
		Config: a.config,
		Router: a.router,
		ID:     a.loadIDs,
		In:     os.Stdin,
		Out:    os.Stdout,
	})
	if err != nil {
		slog.Error("failed to init module pricelist", "error", err)
		os.Exit(1)
	}

	prices.Load(a.ctx)
	a.prices = prices
}
