package approval

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
)

type HistoryService interface {
	// List returns the session company's history, newest first.
	List(ctx context.Context, session access.Session, filter HistoryFilter) (ListHistoryResponse, error)
}

// BoardSweeper drops per-user last-known record state that has not been used
// for maxIdle. It returns the number of boards dropped.
type BoardSweeper interface {
	EvictIdle(maxIdle time.Duration) int
}
