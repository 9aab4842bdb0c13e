package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stipendtriage/internal/service"
	"stipendtriage/internal/store"
)

// HandoffDispatcher periodically pushes undelivered handoff records to the
// downstream consumer and marks them delivered on success.
type HandoffDispatcher struct {
	handoffs   store.HandoffStore
	downstream *service.DownstreamClient
	interval   time.Duration
	batchSize  int
}

func NewHandoffDispatcher(handoffs store.HandoffStore, downstream *service.DownstreamClient) *HandoffDispatcher {
	return &HandoffDispatcher{
		handoffs:   handoffs,
		downstream: downstream,
		interval:   10 * time.Second,
		batchSize:  5,
	}
}

func (d *HandoffDispatcher) Start(ctx context.Context) {
	slog.Info("starting handoff dispatcher")
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("handoff dispatcher stopped")
			return
		case <-ticker.C:
			if err := d.processBatch(ctx); err != nil {
				slog.Error("batch delivery failed", "error", err)
			}
		}
	}
}

func (d *HandoffDispatcher) processBatch(ctx context.Context) error {
	records, err := d.handoffs.GetUndelivered(ctx, d.batchSize)
	if err != nil {
		return fmt.Errorf("get undelivered handoffs: %w", err)
	}

	for _, rec := range records {
		if err := d.downstream.Deliver(ctx, rec); err != nil {
			if errors.Is(err, service.ErrDownstreamBusy) {
				slog.Warn("downstream busy, deferring batch", "application_id", rec.ApplicationID)
				return nil
			}
			slog.Error("handoff delivery failed", "application_id", rec.ApplicationID, "error", err)
			continue
		}

		if err := d.handoffs.MarkDelivered(ctx, rec.ApplicationID); err != nil {
			slog.Error("failed to mark handoff delivered", "application_id", rec.ApplicationID, "error", err)
		} else {
			slog.Info("handoff delivered", "application_id", rec.ApplicationID, "review_tier", rec.ReviewTier)
		}
	}

	return nil
}
