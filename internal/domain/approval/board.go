package approval

import "sync"

// Board holds the last known state of a record list as seen by the console.
// ApplyOptimistic patches one record after the backend confirmed a transition;
// Reconcile replaces everything with the authoritative list and always wins.
type Board[S Status, R any] struct {
	mu         sync.RWMutex
	key        func(R) string
	status     func(R) S
	withStatus func(R, S) R
	order      []string
	records    map[string]R
	synced     bool
}

// NewBoard creates an empty board using the given accessors.
func NewBoard[S Status, R any](key func(R) string, status func(R) S, withStatus func(R, S) R) *Board[S, R] {
	return &Board[S, R]{
		key:        key,
		status:     status,
		withStatus: withStatus,
		records:    make(map[string]R),
	}
}

// Reconcile replaces the board content with the server list. Local optimistic
// patches are discarded.
func (b *Board[S, R]) Reconcile(records []R) {
	order := make([]string, 0, len(records))
	byKey := make(map[string]R, len(records))
	for _, r := range records {
		k := b.key(r)
		if _, dup := byKey[k]; !dup {
			order = append(order, k)
		}
		byKey[k] = r
	}

	b.mu.Lock()
	b.order = order
	b.records = byKey
	b.synced = true
	b.mu.Unlock()
}

// ApplyOptimistic sets the status of a known record. It reports false when the
// record is not on the board.
func (b *Board[S, R]) ApplyOptimistic(id string, to S) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.records[id]
	if !ok {
		return false
	}
	b.records[id] = b.withStatus(r, to)
	return true
}

// Get returns the last known record.
func (b *Board[S, R]) Get(id string) (R, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.records[id]
	return r, ok
}

// StatusOf returns the last known status of a record.
func (b *Board[S, R]) StatusOf(id string) (S, bool) {
	r, ok := b.Get(id)
	if !ok {
		var zero S
		return zero, false
	}
	return b.status(r), true
}

// Synced reports whether the board has been reconciled at least once.
func (b *Board[S, R]) Synced() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.synced
}

// List returns the records in server order.
func (b *Board[S, R]) List() []R {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]R, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.records[k])
	}
	return out
}
