// Command cleanup-sharelinks deletes share links that expired or were
// revoked more than SHARE_LINK_RETENTION_DAYS ago, along with their access
// history. It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/adapter/postgres"
	"github.com/agendaamiga/agenda-backend/internal/adapter/postgres/sharelink"
	"github.com/agendaamiga/agenda-backend/internal/app"
	"github.com/agendaamiga/agenda-backend/internal/config"
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

	repo := sharelink.New(pool)

	threshold := time.Now().UTC().AddDate(0, 0, -cfg.ShareLink.CleanupRetentionDays)

	deleted, err := repo.ExcluirExpirados(ctx, threshold)
	if err != nil {
		logger.Error("share link cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("share link cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
