// Command sync-doses delivers dose confirmations recorded while offline.
//
// Usage:
//
//	sync-doses <doseLogId>[@<RFC3339 instant>]...
//
// The ids are queued in the given order and flushed every SYNC_INTERVAL
// until the queue drains or SYNC_TIMEOUT elapses. Each confirmation is sent
// with the instant it was recorded: the one after "@", or the time the
// agent started when none is given. Confirmations the API rejects for good
// (4xx other than 429) are dropped and reported.
//
// Exit codes: 0 = all delivered, 1 = error or undelivered ids, 2 = usage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/app"
	"github.com/agendaamiga/agenda-backend/internal/client"
	"github.com/agendaamiga/agenda-backend/internal/config"
	"github.com/agendaamiga/agenda-backend/internal/offline"
	"github.com/prometheus/client_golang/prometheus"
)

type confirmation struct {
	logID    string
	instante time.Time
}

// parseConfirmations reads "id" or "id@instant" arguments. Ids without an
// instant are stamped with now.
func parseConfirmations(args []string, now time.Time) ([]confirmation, error) {
	out := make([]confirmation, 0, len(args))
	for _, arg := range args {
		id, at, hasAt := strings.Cut(arg, "@")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("argument %q: empty dose log id", arg)
		}

		c := confirmation{logID: id, instante: now}
		if hasAt {
			t, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return nil, fmt.Errorf("argument %q: instant: %w", arg, err)
			}
			c.instante = t
		}
		out = append(out, c)
	}
	return out, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: sync-doses <doseLogId>[@<RFC3339 instant>]...")
		os.Exit(2)
	}
	ids, err := parseConfirmations(os.Args[1:], time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.LoadAgent()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	doer := client.NewRetryDoer(logger, &http.Client{Timeout: 15 * time.Second},
		cfg.Sync.MaxRetries, 500*time.Millisecond, 10*time.Second)
	api, err := client.New(cfg.Sync.APIBaseURL, doer)
	if err != nil {
		logger.Error("create api client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Sync.Timeout)
	defer cancel()

	queue := offline.NewQueue(logger, offline.NewMetrics(prometheus.NewRegistry()))
	for _, c := range ids {
		queue.EnqueueAt(c.logID, c.instante)
	}

	var rejected []string
	deliver := func(ctx context.Context, p offline.PendingConfirmation) error {
		err := api.ConfirmarDoseEm(ctx, p.LogID, p.CreatedAt)
		if err != nil && client.IsPermanent(err) {
			logger.ErrorContext(ctx, "confirmation rejected, dropping",
				slog.String("log_id", p.LogID),
				slog.Time("recorded_at", p.CreatedAt),
				slog.String("error", err.Error()),
			)
			rejected = append(rejected, p.LogID)
			return nil
		}
		return err
	}

	drainErr := offline.Drain(ctx, queue, deliver, cfg.Sync.Interval)

	pending := queue.Peek()
	logger.Info("sync finished",
		slog.Int("requested", len(ids)),
		slog.Int("pending", len(pending)),
		slog.Int("rejected", len(rejected)),
	)

	if drainErr != nil {
		pendingIDs := make([]string, len(pending))
		for i, p := range pending {
			pendingIDs[i] = p.LogID
		}
		logger.Error("sync did not complete",
			slog.String("error", drainErr.Error()),
			slog.Any("pending_ids", pendingIDs),
		)
		os.Exit(1)
	}
	if len(rejected) > 0 {
		logger.Error("some confirmations were rejected", slog.Any("rejected_ids", rejected))
		os.Exit(1)
	}
}
