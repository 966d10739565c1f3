package main

import (
	"context"
	"fmt"
	"message-board/internal"
	"message-board/storage"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/logs"
)

// The viewer serves /inspect over a read-only handle, so it can run next to
// a live server holding the directory lock.
func main() {
	config, err := internal.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := storage.Open(storage.Options{Path: config.BadgerFilepath, ReadOnly: true}, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// No service runs here
	stats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	internal.StartDebugServer(ctx, log, config.DebugPort, internal.NewDebugRouter(db, internal.MessageMapper, stats))
	<-ctx.Done()
	log.Info("Viewer stopped")
}
