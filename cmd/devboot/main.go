package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bashhack/devboot/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := NewDefaultApp(config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	// Cancel in-flight git and HTTP calls on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Execute(ctx, os.Args[1:])
	stop()

	app.exit(code)
}
