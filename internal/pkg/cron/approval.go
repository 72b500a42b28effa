package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
)

type ApprovalJobs struct {
	sweepers []approval.BoardSweeper
	maxIdle  time.Duration
}

// NewApprovalJobs builds the jobs that drop approval boards idle for maxIdle.
func NewApprovalJobs(maxIdle time.Duration, sweepers ...approval.BoardSweeper) *ApprovalJobs {
	return &ApprovalJobs{sweepers: sweepers, maxIdle: maxIdle}
}

// RegisterJobs sweeps at half the idle limit so a board outlives it by at
// most that much.
func (j *ApprovalJobs) RegisterJobs(scheduler *Scheduler) {
	interval := j.maxIdle / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	scheduler.AddJob("evict_idle_approval_boards", interval, 0, j.EvictIdleBoards)
}

func (j *ApprovalJobs) EvictIdleBoards(ctx context.Context) error {
	evicted := 0
	for _, s := range j.sweepers {
		evicted += s.EvictIdle(j.maxIdle)
	}
	if evicted > 0 {
		slog.Info("Cron: Evicted idle approval boards", "count", evicted)
	}
	return nil
}
