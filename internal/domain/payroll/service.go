package payroll

import (
	"context"
	"time"
)

// PayrollService computes pay-period summaries from backend source data.
type PayrollService interface {
	GetPeriod(ctx context.Context, req PeriodRequest) (PeriodResponse, error)

	GetSummary(ctx context.Context, req RangeRequest) (UserSummaryResponse, error)

	// ListSummaries summarizes every roster employee. A failed detail fetch
	// does not abort the listing.
	ListSummaries(ctx context.Context, req RangeRequest) (AllSummariesResponse, error)

	GetLateness(ctx context.Context, req RangeRequest) (LatenessResponse, error)

	ListSnapshots(ctx context.Context, req RangeRequest) (ListSnapshotsResponse, error)

	// ClosePreviousPeriod snapshots the period before the one containing now
	// once now has reached its cutoff. It reports whether snapshots were written.
	ClosePreviousPeriod(ctx context.Context, now time.Time) (bool, error)
}
