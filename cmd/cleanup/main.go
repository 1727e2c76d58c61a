// Command cleanup physically removes items that were archived longer ago
// than the configured retention period, cascading into their conversations,
// claims and turnover requests. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres"
	itemrepo "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres/item"
	"github.com/Michael3682/track-n-find-sub000/internal/app"
	"github.com/Michael3682/track-n-find-sub000/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	items := itemrepo.New(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Items.ArchiveRetentionDays)

	purged, err := items.PurgeArchived(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int64("purged", purged),
		slog.Time("threshold", threshold),
	)
}
