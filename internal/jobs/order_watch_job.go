package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// OrderWatchJob periodically scans the order store and reports what changed
// since the previous scan: orders that moved to a new status and orders that
// arrived. It is the kitchen monitor's notification source.
type OrderWatchJob struct {
	listHandler queries.ListOrdersQueryHandler
	detector    services.ChangeDetector
	interval    int
	cron        *cron.Cron
	logger      *slog.Logger

	mu        sync.Mutex
	lastSeen  map[int64]order.Status
	lastCount int
	primed    bool
}

// NewOrderWatchJob creates a watch job scanning every intervalSeconds.
func NewOrderWatchJob(
	listHandler queries.ListOrdersQueryHandler,
	detector services.ChangeDetector,
	intervalSeconds int,
	logger *slog.Logger,
) *OrderWatchJob {
	return &OrderWatchJob{
		listHandler: listHandler,
		detector:    detector,
		interval:    intervalSeconds,
		cron:        cron.New(),
		logger:      logger.With("component", "order_watch_job"),
		lastSeen:    make(map[int64]order.Status),
	}
}

// Start begins the periodic scan.
func (j *OrderWatchJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %ds", j.interval), func() {
		ctx := context.Background()
		if err := j.scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order watch scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Order watch job started", "interval_seconds", j.interval)
	return nil
}

// Stop stops the periodic scan.
func (j *OrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order watch job stopped")
}

// scan compares the store against the previous observation and logs every
// detected change. The first scan only primes the baseline so a restart does
// not replay the whole store as news.
func (j *OrderWatchJob) scan(ctx context.Context) error {
	board, err := j.listHandler.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	current := make(map[int64]order.Status, len(board))
	for _, row := range board {
		current[row.ID] = row.Status
	}

	if !j.primed {
		j.lastSeen = current
		j.lastCount = len(board)
		j.primed = true
		return nil
	}

	if arrived := j.detector.DetectNewOrders(j.lastCount, len(board)); arrived != nil {
		j.logger.InfoContext(ctx, "New orders arrived", "count", arrived.Count)
	}

	for id, status := range current {
		prevStatus, seen := j.lastSeen[id]
		if !seen {
			continue
		}

		prev := &services.Observation{OrderID: id, Status: prevStatus}
		changed, detectErr := j.detector.DetectStatusChange(prev, id, status)
		if detectErr != nil {
			j.logger.ErrorContext(ctx, "Order watch detection failed",
				"order_id", id, "error", detectErr)
			continue
		}

		if changed != nil {
			j.logger.InfoContext(ctx, "Order status changed",
				"order_id", changed.OrderID,
				"from", string(changed.From),
				"to", string(changed.To))
		}
	}

	j.lastSeen = current
	j.lastCount = len(board)
	return nil
}
