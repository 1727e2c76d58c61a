// Command server runs the TrackNFind HTTP and websocket backend.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Michael3682/track-n-find-sub000/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
