package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/pricelist/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	a := app.New()

	// blocks until the user types exit, stdin closes or a signal arrives
	<-a.Start()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.Stop(ctx)
}
