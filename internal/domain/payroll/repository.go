package payroll

import "context"

// SourceRepository is the HR backend's payroll resource.
type SourceRepository interface {
	// ListEmployees returns the payroll roster.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// GetDetail returns raw attendance and overtime of one user. The backend
	// is asked for period but the result may contain records outside it.
	GetDetail(ctx context.Context, userID string, period PayPeriod) (Detail, error)
}

// SnapshotRepository stores summaries of closed periods.
type SnapshotRepository interface {
	// Upsert writes snapshots keyed by (user_id, period_start, period_end).
	Upsert(ctx context.Context, snapshots []Snapshot) error

	ListByPeriod(ctx context.Context, period PayPeriod) ([]Snapshot, error)

	ExistsForPeriod(ctx context.Context, period PayPeriod) (bool, error)
}
