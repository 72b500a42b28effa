package approval

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kadiv = access.Session{UserID: "2", Username: "kadiv", RoleID: access.RoleKadiv, CompanyID: "1"}

type fakeOvertimeRepo struct {
	mu        sync.Mutex
	records   []overtime.OvertimeRequest
	calls     int
	listCalls int
	failWith  error
	// hidden makes List omit records with these statuses.
	hidden map[overtime.Status]bool
}

func (f *fakeOvertimeRepo) List(ctx context.Context) ([]overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]overtime.OvertimeRequest, 0, len(f.records))
	for _, r := range f.records {
		if !f.hidden[r.Status] {
			out = append(out, r)
		}
	}
	return out, nil
}

// set moves a record like the backend does, refusing when from does not match.
func (f *fakeOvertimeRepo) set(id string, from, to overtime.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.records {
		if f.records[i].ID != id {
			continue
		}
		if f.records[i].Status != from {
			return fmt.Errorf("%w: status is %d", approval.ErrTransitionRejected, f.records[i].Status)
		}
		f.records[i].Status = to
		return nil
	}
	return overtime.ErrOvertimeNotFound
}

func (f *fakeOvertimeRepo) SetSupervisorDecision(ctx context.Context, id string, status overtime.Status) error {
	return f.set(id, overtime.StatusPending, status)
}

func (f *fakeOvertimeRepo) HRDApprove(ctx context.Context, id string) error {
	return f.set(id, overtime.StatusApproved, overtime.StatusHRDApproved)
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	entries []approval.HistoryEntry
	err     error
}

func (f *fakeHistoryRepo) Append(ctx context.Context, entry approval.HistoryEntry) (approval.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return approval.HistoryEntry{}, f.err
	}
	entry.ID = "h"
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeHistoryRepo) List(ctx context.Context, filter approval.HistoryFilter, companyID string) ([]approval.HistoryEntry, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []approval.HistoryEntry
	for _, e := range f.entries {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func newOvertimeFixture(statuses ...overtime.Status) (*fakeOvertimeRepo, *fakeHistoryRepo, overtime.OvertimeService) {
	repo := &fakeOvertimeRepo{}
	for i, s := range statuses {
		repo.records = append(repo.records, overtime.OvertimeRequest{
			ID:        string(rune('1' + i)),
			UserID:    "7",
			Date:      time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			StartTime: 17 * time.Hour,
			EndTime:   19*time.Hour + 30*time.Minute,
			Status:    s,
		})
	}
	history := &fakeHistoryRepo{}
	return repo, history, NewOvertimeService(repo, history)
}

func TestOvertimeService_ApproveThenHRDApprove(t *testing.T) {
	repo, history, svc := newOvertimeFixture(overtime.StatusPending)
	ctx := context.Background()

	res, err := svc.Approve(ctx, kadiv, approval.TransitionRequest{ID: "1"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, int(overtime.StatusApproved), res.Record.Status)

	hrd := access.Session{UserID: "4", RoleID: access.RoleHRD, CompanyID: "1"}
	res, err = svc.HRDApprove(ctx, hrd, approval.TransitionRequest{ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, int(overtime.StatusHRDApproved), res.Record.Status)

	assert.Equal(t, 2, repo.calls)
	require.Len(t, history.entries, 2)
	assert.Equal(t, approval.ActionApprove, history.entries[0].Action)
	assert.Equal(t, 0, history.entries[0].FromStatus)
	assert.Equal(t, 1, history.entries[0].ToStatus)
	assert.Equal(t, "2", history.entries[0].ActorUserID)
	assert.Equal(t, approval.ActionHRDApprove, history.entries[1].Action)
	assert.Equal(t, access.RoleHRD, history.entries[1].ActorRoleID)
}

func TestOvertimeService_HRDApproveOnPendingIsIllegal(t *testing.T) {
	repo, history, svc := newOvertimeFixture(overtime.StatusPending)

	_, err := svc.HRDApprove(context.Background(), kadiv, approval.TransitionRequest{ID: "1"})
	assert.ErrorIs(t, err, approval.ErrIllegalTransition)
	assert.Equal(t, 0, repo.calls)
	assert.Empty(t, history.entries)
	assert.Equal(t, overtime.StatusPending, repo.records[0].Status)
}

func TestOvertimeService_DoubleApproveIsNoOp(t *testing.T) {
	repo, history, svc := newOvertimeFixture(overtime.StatusPending)
	ctx := context.Background()

	_, err := svc.Approve(ctx, kadiv, approval.TransitionRequest{ID: "1"})
	require.NoError(t, err)

	res, err := svc.Approve(ctx, kadiv, approval.TransitionRequest{ID: "1"})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, int(overtime.StatusApproved), res.Record.Status)
	assert.Equal(t, 1, repo.calls)
	assert.Len(t, history.entries, 1)
}

func TestOvertimeService_ApproveAfterHRDIsNoOp(t *testing.T) {
	repo, _, svc := newOvertimeFixture(overtime.StatusHRDApproved)

	res, err := svc.Approve(context.Background(), kadiv, approval.TransitionRequest{ID: "1"})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, 0, repo.calls)
}

func TestOvertimeService_RejectApprovedIsIllegal(t *testing.T) {
	repo, _, svc := newOvertimeFixture(overtime.StatusApproved, overtime.StatusRejected)
	ctx := context.Background()

	_, err := svc.Reject(ctx, kadiv, approval.TransitionRequest{ID: "1"})
	assert.ErrorIs(t, err, approval.ErrIllegalTransition)

	_, err = svc.Approve(ctx, kadiv, approval.TransitionRequest{ID: "2"})
	assert.ErrorIs(t, err, approval.ErrIllegalTransition)
	assert.Equal(t, 0, repo.calls)
}

func TestOvertimeService_BackendRejectionKeepsPriorState(t *testing.T) {
	repo, history, svc := newOvertimeFixture(overtime.StatusPending)
	repo.failWith = &backend.APIError{StatusCode: 409, Message: "already processed"}
	ctx := context.Background()

	_, err := svc.Reject(ctx, kadiv, approval.TransitionRequest{ID: "1"})
	var apiErr *backend.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Empty(t, history.entries)

	list, err := svc.List(ctx, kadiv)
	require.NoError(t, err)
	assert.Equal(t, int(overtime.StatusPending), list[0].Status)
}

func TestOvertimeService_ReconcileWins(t *testing.T) {
	repo, history, svc := newOvertimeFixture(overtime.StatusPending)
	ctx := context.Background()

	_, err := svc.List(ctx, kadiv)
	require.NoError(t, err)

	// Another actor rejects the request behind the console's back.
	repo.records[0].Status = overtime.StatusRejected

	_, err = svc.Approve(ctx, kadiv, approval.TransitionRequest{ID: "1"})
	assert.ErrorIs(t, err, approval.ErrTransitionRejected)
	assert.Empty(t, history.entries)

	// The refusal re-synced the board, so the next attempt is stopped locally.
	_, err = svc.Approve(ctx, kadiv, approval.TransitionRequest{ID: "1"})
	assert.ErrorIs(t, err, approval.ErrIllegalTransition)
	assert.Equal(t, 1, repo.calls)

	list, err := svc.List(ctx, kadiv)
	require.NoError(t, err)
	assert.Equal(t, int(overtime.StatusRejected), list[0].Status)
}

func TestOvertimeService_RecordHiddenAfterTransition(t *testing.T) {
	repo, _, svc := newOvertimeFixture(overtime.StatusPending)
	repo.hidden = map[overtime.Status]bool{overtime.StatusApproved: true}

	res, err := svc.Approve(context.Background(), kadiv, approval.TransitionRequest{ID: "1"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, int(overtime.StatusApproved), res.Record.Status)
}

func TestOvertimeService_UnknownRecord(t *testing.T) {
	repo, _, svc := newOvertimeFixture(overtime.StatusPending)

	_, err := svc.Approve(context.Background(), kadiv, approval.TransitionRequest{ID: "42"})
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotFound)
	assert.ErrorIs(t, err, approval.ErrRecordNotFound)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 0, repo.calls)
}

func TestOvertimeService_HistoryFailureDoesNotUndo(t *testing.T) {
	repo, history, svc := newOvertimeFixture(overtime.StatusPending)
	history.err = errors.New("db down")

	res, err := svc.Approve(context.Background(), kadiv, approval.TransitionRequest{ID: "1"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, overtime.StatusApproved, repo.records[0].Status)
}

func TestOvertimeService_ValidatesRequest(t *testing.T) {
	_, _, svc := newOvertimeFixture(overtime.StatusPending)
	_, err := svc.Approve(context.Background(), kadiv, approval.TransitionRequest{})
	assert.Error(t, err)
}

func TestOvertimeService_ConcurrentDoubleApproval(t *testing.T) {
	repo, history, svc := newOvertimeFixture(overtime.StatusPending)
	ctx := context.Background()
	_, err := svc.List(ctx, kadiv)
	require.NoError(t, err)

	other := access.Session{UserID: "1", RoleID: access.RoleAdmin, CompanyID: "1"}
	_, err = svc.List(ctx, other)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, s := range []access.Session{kadiv, other} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Approve(ctx, s, approval.TransitionRequest{ID: "1"})
		}()
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, overtime.StatusApproved, repo.records[0].Status)
	assert.Len(t, history.entries, 1)
}

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
	calls   int
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.AttendanceRecord, error) {
	return append([]attendance.AttendanceRecord(nil), f.records...), nil
}

func (f *fakeAttendanceRepo) Approve(ctx context.Context, id string) error {
	f.calls++
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Status = attendance.StatusApproved
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func TestAttendanceService_Approve(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		{ID: "10", UserID: "7", ClockIn: time.Date(2025, 3, 3, 7, 30, 0, 0, time.UTC)},
	}}
	history := &fakeHistoryRepo{}
	svc := NewAttendanceService(repo, history)
	ctx := context.Background()

	res, err := svc.Approve(ctx, kadiv, approval.TransitionRequest{ID: "10"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, int(attendance.StatusApproved), res.Record.Status)

	res, err = svc.Approve(ctx, kadiv, approval.TransitionRequest{ID: "10"})
	require.NoError(t, err)
	assert.False(t, res.Changed)

	assert.Equal(t, 1, repo.calls)
	require.Len(t, history.entries, 1)
	assert.Equal(t, approval.KindAttendance, history.entries[0].RecordKind)
}

func TestHistoryService_List(t *testing.T) {
	history := &fakeHistoryRepo{entries: []approval.HistoryEntry{
		{ID: "a", RecordKind: approval.KindOvertime, RecordID: "1", CompanyID: "1", CreatedAt: time.Now()},
		{ID: "b", RecordKind: approval.KindOvertime, RecordID: "2", CompanyID: "9", CreatedAt: time.Now()},
	}}
	svc := NewHistoryService(history)

	resp, err := svc.List(context.Background(), kadiv, approval.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "a", resp.Entries[0].ID)

	bad := "leave"
	_, err = svc.List(context.Background(), kadiv, approval.HistoryFilter{RecordKind: &bad})
	assert.Error(t, err)
}

func TestOvertimeService_BoardsAreCapped(t *testing.T) {
	repo, _, svc := newOvertimeFixture(overtime.StatusPending)
	impl := svc.(*OvertimeServiceImpl)

	for i := 0; i < MaxBoards*4; i++ {
		session := access.Session{UserID: fmt.Sprintf("u%d", i), RoleID: access.RoleKadiv}
		_, err := svc.List(context.Background(), session)
		require.NoError(t, err)
	}

	assert.Equal(t, MaxBoards, impl.workflow.size())
	assert.Equal(t, MaxBoards*4, repo.listCalls)
}

func TestOvertimeService_EvictIdle(t *testing.T) {
	_, _, svc := newOvertimeFixture(overtime.StatusPending)
	impl := svc.(*OvertimeServiceImpl)

	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	impl.workflow.now = func() time.Time { return now }

	idle := access.Session{UserID: "10", RoleID: access.RoleKadiv}
	_, err := svc.List(context.Background(), idle)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	_, err = svc.List(context.Background(), kadiv)
	require.NoError(t, err)

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, svc.EvictIdle(30*time.Minute))
	assert.Equal(t, 1, impl.workflow.size())

	now = now.Add(time.Hour)
	assert.Equal(t, 1, svc.EvictIdle(30*time.Minute))
	assert.Equal(t, 0, impl.workflow.size())
}

func TestOvertimeService_ApproveAfterEvictionRefetches(t *testing.T) {
	repo, history, svc := newOvertimeFixture(overtime.StatusPending)
	impl := svc.(*OvertimeServiceImpl)
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	impl.workflow.now = func() time.Time { return now }

	_, err := svc.List(context.Background(), kadiv)
	require.NoError(t, err)
	now = now.Add(time.Hour)
	require.Equal(t, 1, svc.EvictIdle(30*time.Minute))

	res, err := svc.Approve(context.Background(), kadiv, approval.TransitionRequest{ID: "1"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, int(overtime.StatusApproved), res.Record.Status)
	assert.Equal(t, 1, repo.calls)
	assert.Len(t, history.entries, 1)
}
