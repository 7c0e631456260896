package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/haguru/raikiri/config"
	"github.com/haguru/raikiri/internal/app"
)

func main() {
	// create and initialize the app
	application, err := app.NewApp(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start raikiri: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run until interrupted
	if err := application.Run(ctx); err != nil {
		application.Logger.Error("Server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}
