package approval

import "context"

// HistoryRepository stores confirmed transitions. Entries are append-only.
type HistoryRepository interface {
	Append(ctx context.Context, entry HistoryEntry) (HistoryEntry, error)
	List(ctx context.Context, filter HistoryFilter, companyID string) ([]HistoryEntry, int64, error)
}
