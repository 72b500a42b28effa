package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel detail fetches of ListSummaries.
const DefaultConcurrency = 4

type PayrollServiceImpl struct {
	payroll.SourceRepository
	payroll.SnapshotRepository
	loc         *time.Location
	concurrency int
	now         func() time.Time
}

func NewPayrollService(
	sourceRepo payroll.SourceRepository,
	snapshotRepo payroll.SnapshotRepository,
	loc *time.Location,
	concurrency int,
) payroll.PayrollService {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &PayrollServiceImpl{
		SourceRepository:   sourceRepo,
		SnapshotRepository: snapshotRepo,
		loc:                loc,
		concurrency:        concurrency,
		now:                time.Now,
	}
}

// GetPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, req payroll.PeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}
	return req.Resolve(s.now(), s.loc).ToResponse(), nil
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, req payroll.RangeRequest) (payroll.UserSummaryResponse, error) {
	period, err := s.resolveForUser(req)
	if err != nil {
		return payroll.UserSummaryResponse{}, err
	}

	detail, err := s.SourceRepository.GetDetail(ctx, req.UserID, period)
	if err != nil {
		return payroll.UserSummaryResponse{}, err
	}

	summary := payroll.Aggregate(req.UserID, detail.Attendances, detail.Overtimes, period)
	return payroll.UserSummaryResponse{
		Period:  period.ToResponse(),
		Summary: summary.ToResponse(),
	}, nil
}

// ListSummaries implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListSummaries(ctx context.Context, req payroll.RangeRequest) (payroll.AllSummariesResponse, error) {
	period, err := s.resolve(req)
	if err != nil {
		return payroll.AllSummariesResponse{}, err
	}

	rows, failed, err := s.summarize(ctx, period)
	if err != nil {
		return payroll.AllSummariesResponse{}, err
	}

	items := make([]payroll.SummaryResponse, 0, len(rows))
	for _, row := range rows {
		resp := row.summary.ToResponse()
		resp.Name = row.employee.Name
		items = append(items, resp)
	}
	return payroll.AllSummariesResponse{
		Period:        period.ToResponse(),
		Items:         items,
		FailedUserIDs: failed,
	}, nil
}

// GetLateness implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetLateness(ctx context.Context, req payroll.RangeRequest) (payroll.LatenessResponse, error) {
	period, err := s.resolveForUser(req)
	if err != nil {
		return payroll.LatenessResponse{}, err
	}

	detail, err := s.SourceRepository.GetDetail(ctx, req.UserID, period)
	if err != nil {
		return payroll.LatenessResponse{}, err
	}
	return payroll.Lateness(req.UserID, detail.Attendances, period).ToResponse(), nil
}

// ListSnapshots implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListSnapshots(ctx context.Context, req payroll.RangeRequest) (payroll.ListSnapshotsResponse, error) {
	period, err := s.resolve(req)
	if err != nil {
		return payroll.ListSnapshotsResponse{}, err
	}
	if req.Start == "" {
		// The current period is still open; show the last closed one.
		period = payroll.PreviousPeriod(period)
	}

	snapshots, err := s.SnapshotRepository.ListByPeriod(ctx, period)
	if err != nil {
		return payroll.ListSnapshotsResponse{}, fmt.Errorf("failed to list payroll snapshots: %w", err)
	}

	items := make([]payroll.SnapshotResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		items = append(items, snap.ToResponse())
	}
	return payroll.ListSnapshotsResponse{Period: period.ToResponse(), Items: items}, nil
}

// ClosePreviousPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ClosePreviousPeriod(ctx context.Context, now time.Time) (bool, error) {
	period := payroll.PreviousPeriod(payroll.CurrentPeriod(now.In(s.loc)))

	exists, err := s.SnapshotRepository.ExistsForPeriod(ctx, period)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll snapshots: %w", err)
	}
	if exists {
		return false, nil
	}

	rows, failed, err := s.summarize(ctx, period)
	if err != nil {
		return false, err
	}
	if len(failed) > 0 {
		// A partial snapshot would be final; try again on the next run.
		return false, fmt.Errorf("payroll period %s not closed: %d detail fetches failed", period, len(failed))
	}

	snapshots := make([]payroll.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, payroll.Snapshot{
			UserID:             row.employee.UserID,
			EmployeeName:       row.employee.Name,
			PeriodStart:        period.Start,
			PeriodEnd:          period.End,
			TotalDaysPresent:   row.summary.TotalDaysPresent,
			TotalOvertimeHours: row.summary.TotalOvertimeHours,
		})
	}
	if err := s.SnapshotRepository.Upsert(ctx, snapshots); err != nil {
		return false, fmt.Errorf("failed to store payroll snapshots: %w", err)
	}

	slog.Info("Closed payroll period", "period", period.String(), "employees", len(snapshots))
	return true, nil
}

type summaryRow struct {
	employee payroll.Employee
	summary  payroll.PayrollSummary
}

// summarize aggregates every roster employee over period. A failed detail
// fetch contributes an empty record set and is reported in failed.
func (s *PayrollServiceImpl) summarize(ctx context.Context, period payroll.PayPeriod) ([]summaryRow, []string, error) {
	employees, err := s.SourceRepository.ListEmployees(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]summaryRow, len(employees))
	var (
		mu     sync.Mutex
		failed = make([]string, 0)
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, emp := range employees {
		g.Go(func() error {
			detail, err := s.SourceRepository.GetDetail(gCtx, emp.UserID, period)
			if err != nil {
				slog.Warn("Failed to fetch payroll detail", "user_id", emp.UserID, "period", period.String(), "error", err)
				mu.Lock()
				failed = append(failed, emp.UserID)
				mu.Unlock()
				detail = payroll.Detail{}
			}
			rows[i] = summaryRow{
				employee: emp,
				summary:  payroll.Aggregate(emp.UserID, detail.Attendances, detail.Overtimes, period),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// Keep roster order for failed ids too.
	failedSet := make(map[string]struct{}, len(failed))
	for _, id := range failed {
		failedSet[id] = struct{}{}
	}
	ordered := make([]string, 0, len(failed))
	for _, emp := range employees {
		if _, ok := failedSet[emp.UserID]; ok {
			ordered = append(ordered, emp.UserID)
		}
	}
	return rows, ordered, nil
}

func (s *PayrollServiceImpl) resolveForUser(req payroll.RangeRequest) (payroll.PayPeriod, error) {
	if validator.IsEmpty(req.UserID) {
		return payroll.PayPeriod{}, validator.ValidationErrors{
			{Field: "user_id", Message: "user_id is required"},
		}
	}
	return s.resolve(req)
}

func (s *PayrollServiceImpl) resolve(req payroll.RangeRequest) (payroll.PayPeriod, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayPeriod{}, err
	}
	return req.Resolve(s.now(), s.loc)
}
