package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
)

// MaxBoards caps how many users' last-known lists one workflow keeps. Past
// the cap the least recently used board is dropped.
const MaxBoards = 512

// workflow runs one record type's transitions against the backend. Every
// session gets its own board, mirroring one console screen. Boards are
// dropped when idle (EvictIdle) or when MaxBoards is exceeded; a dropped
// board is rebuilt from the backend on next use.
type workflow[S approval.Status, R any] struct {
	kind     approval.RecordKind
	machine  *approval.Machine[S]
	newBoard func() *approval.Board[S, R]
	fetch    func(ctx context.Context) ([]R, error)
	notFound error
	history  approval.HistoryRepository

	mu        sync.Mutex
	boards    map[string]*boardEntry[S, R]
	maxBoards int
	now       func() time.Time
}

type boardEntry[S approval.Status, R any] struct {
	board   *approval.Board[S, R]
	touched time.Time
}

// result is the record after a transition attempt.
type result[R any] struct {
	Record  R
	Changed bool
}

func (w *workflow[S, R]) clock() time.Time {
	if w.now != nil {
		return w.now()
	}
	return time.Now()
}

func (w *workflow[S, R]) board(session access.Session) *approval.Board[S, R] {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.boards == nil {
		w.boards = make(map[string]*boardEntry[S, R])
	}
	now := w.clock()
	entry, ok := w.boards[session.UserID]
	if !ok {
		limit := w.maxBoards
		if limit <= 0 {
			limit = MaxBoards
		}
		if len(w.boards) >= limit {
			w.evictOldestLocked()
		}
		entry = &boardEntry[S, R]{board: w.newBoard()}
		w.boards[session.UserID] = entry
	}
	entry.touched = now
	return entry.board
}

func (w *workflow[S, R]) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, entry := range w.boards {
		if oldestKey == "" || entry.touched.Before(oldest) {
			oldestKey, oldest = key, entry.touched
		}
	}
	delete(w.boards, oldestKey)
}

// evictIdle drops boards not touched within maxIdle and reports how many
// were dropped.
func (w *workflow[S, R]) evictIdle(maxIdle time.Duration) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := w.clock().Add(-maxIdle)
	evicted := 0
	for key, entry := range w.boards {
		if entry.touched.Before(cutoff) {
			delete(w.boards, key)
			evicted++
		}
	}
	return evicted
}

func (w *workflow[S, R]) size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.boards)
}

// refresh re-fetches the authoritative list and reconciles the session board.
func (w *workflow[S, R]) refresh(ctx context.Context, session access.Session) ([]R, error) {
	records, err := w.fetch(ctx)
	if err != nil {
		return nil, err
	}
	b := w.board(session)
	b.Reconcile(records)
	return b.List(), nil
}

// apply performs action on the record named by req. The backend is only
// called when the last known status allows the transition; a record already
// at or past the target is returned unchanged.
func (w *workflow[S, R]) apply(
	ctx context.Context,
	session access.Session,
	req approval.TransitionRequest,
	action approval.Action,
	call func(ctx context.Context, id string, to S) error,
) (result[R], error) {
	if err := req.Validate(); err != nil {
		return result[R]{}, err
	}

	b := w.board(session)
	current, known := b.StatusOf(req.ID)
	if !known {
		if _, err := w.refresh(ctx, session); err != nil {
			return result[R]{}, err
		}
		if current, known = b.StatusOf(req.ID); !known {
			return result[R]{}, fmt.Errorf("%s %s: %w: %w", w.kind, req.ID, w.notFound, approval.ErrRecordNotFound)
		}
	}

	outcome, err := w.machine.Plan(current, action)
	if err != nil {
		return result[R]{}, err
	}
	if outcome.NoOp {
		record, _ := b.Get(req.ID)
		return result[R]{Record: record}, nil
	}

	if err := call(ctx, req.ID, outcome.To); err != nil {
		if errors.Is(err, approval.ErrTransitionRejected) {
			if res, ok := w.settled(ctx, session, req.ID, action); ok {
				return res, nil
			}
		}
		return result[R]{}, err
	}

	b.ApplyOptimistic(req.ID, outcome.To)
	optimistic, _ := b.Get(req.ID)

	if _, err := w.refresh(ctx, session); err != nil {
		slog.Warn("Failed to re-fetch after transition", "kind", w.kind, "record_id", req.ID, "error", err)
	}

	w.record(ctx, session, req, action, outcome)

	record, ok := b.Get(req.ID)
	if !ok {
		// The authoritative list no longer shows the record, e.g. a pending-only view.
		record = optimistic
	}
	return result[R]{Record: record, Changed: true}, nil
}

// settled re-reads the record after the backend refused a transition. When
// someone else already moved it to or past the target, the refusal is treated
// as a no-op success.
func (w *workflow[S, R]) settled(ctx context.Context, session access.Session, id string, action approval.Action) (result[R], bool) {
	if _, err := w.refresh(ctx, session); err != nil {
		return result[R]{}, false
	}
	b := w.board(session)
	current, ok := b.StatusOf(id)
	if !ok {
		return result[R]{}, false
	}
	outcome, err := w.machine.Plan(current, action)
	if err != nil || !outcome.NoOp {
		return result[R]{}, false
	}
	record, _ := b.Get(id)
	return result[R]{Record: record}, true
}

// record appends a history entry. The transition is already confirmed, so a
// failure is only logged.
func (w *workflow[S, R]) record(ctx context.Context, session access.Session, req approval.TransitionRequest, action approval.Action, outcome approval.Outcome[S]) {
	if w.history == nil {
		return
	}
	_, err := w.history.Append(ctx, approval.HistoryEntry{
		RecordKind:  w.kind,
		RecordID:    req.ID,
		Action:      action,
		FromStatus:  int(outcome.From),
		ToStatus:    int(outcome.To),
		ActorUserID: session.UserID,
		ActorRoleID: session.RoleID,
		CompanyID:   session.CompanyID,
		Note:        req.Note,
	})
	if err != nil {
		slog.Error("Failed to record approval history", "kind", w.kind, "record_id", req.ID, "action", action, "error", err)
	}
}
