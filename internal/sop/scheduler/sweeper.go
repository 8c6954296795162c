package scheduler

import (
	"context"
	"log/slog"
	"time"

	"sopdocs/internal/sop/model"
)

// AutoApprover is the slice of the approval engine the sweeper needs.
type AutoApprover interface {
	AutoApprove(ctx context.Context, op *model.PendingOperation) error
}

// PendingSource feeds the sweeper overdue operations.
type PendingSource interface {
	FindOperationsOlderThan(ctx context.Context, status string, cutoff time.Time) ([]*model.PendingOperation, error)
}

// Sweeper periodically auto-approves operations that have sat PENDING past
// the threshold, acting as the "system" approver. Each operation is an
// independent unit of work; one failure never blocks the rest of a sweep.
type Sweeper struct {
	Pending PendingSource
	Engine  AutoApprover

	ThresholdDays int
	Interval      time.Duration
}

func NewSweeper(pending PendingSource, engine AutoApprover, thresholdDays int, interval time.Duration) *Sweeper {
	return &Sweeper{
		Pending:       pending,
		Engine:        engine,
		ThresholdDays: thresholdDays,
		Interval:      interval,
	}
}

// Start runs the sweep loop until the context is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	slog.Info("Auto-approval sweeper started", "interval", s.Interval, "threshold_days", s.ThresholdDays)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Auto-approval sweeper stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep.
func (s *Sweeper) RunOnce(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.ThresholdDays)

	ops, err := s.Pending.FindOperationsOlderThan(ctx, model.StatusPending, cutoff)
	if err != nil {
		slog.Error("Sweep query failed", "error", err)
		return
	}
	if len(ops) == 0 {
		slog.Info("No operations eligible for auto-approval")
		return
	}

	slog.Info("Found operations eligible for auto-approval", "count", len(ops))

	for _, op := range ops {
		if err := s.Engine.AutoApprove(ctx, op); err != nil {
			slog.Error("Failed to auto-approve operation", "operation", op.ID, "error", err)
			continue
		}
		slog.Info("Auto-approved operation", "operation", op.ID)
	}
}
