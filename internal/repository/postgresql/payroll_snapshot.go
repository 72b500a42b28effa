package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollSnapshotRepositoryImpl struct {
	db *database.DB
}

func NewPayrollSnapshotRepository(db *database.DB) payroll.SnapshotRepository {
	return &payrollSnapshotRepositoryImpl{db: db}
}

// Upsert implements payroll.SnapshotRepository.
func (r *payrollSnapshotRepositoryImpl) Upsert(ctx context.Context, snapshots []payroll.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := `
		INSERT INTO payroll_snapshots (id, user_id, employee_name, period_start, period_end,
			total_days_present, total_overtime_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, period_start, period_end) DO UPDATE SET
			employee_name = EXCLUDED.employee_name,
			total_days_present = EXCLUDED.total_days_present,
			total_overtime_hours = EXCLUDED.total_overtime_hours,
			updated_at = NOW()
	`

	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		batch := &pgx.Batch{}
		for _, s := range snapshots {
			id := s.ID
			if id == "" {
				v7, err := uuid.NewV7()
				if err != nil {
					return fmt.Errorf("failed to generate snapshot id: %w", err)
				}
				id = v7.String()
			}
			batch.Queue(query,
				id,
				s.UserID,
				s.EmployeeName,
				s.PeriodStart,
				s.PeriodEnd,
				s.TotalDaysPresent,
				s.TotalOvertimeHours,
			)
		}

		results := GetQuerier(txCtx, r.db).SendBatch(txCtx, batch)
		for range snapshots {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to upsert payroll snapshot: %w", err)
			}
		}
		return results.Close()
	})
}

// ListByPeriod implements payroll.SnapshotRepository.
func (r *payrollSnapshotRepositoryImpl) ListByPeriod(ctx context.Context, period payroll.PayPeriod) ([]payroll.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, employee_name, period_start, period_end,
			total_days_present, total_overtime_hours, created_at, updated_at
		FROM payroll_snapshots
		WHERE period_start = $1 AND period_end = $2
		ORDER BY employee_name, user_id
	`

	rows, err := q.Query(ctx, query, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]payroll.Snapshot, 0)
	for rows.Next() {
		var s payroll.Snapshot
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.EmployeeName,
			&s.PeriodStart,
			&s.PeriodEnd,
			&s.TotalDaysPresent,
			&s.TotalOvertimeHours,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// ExistsForPeriod implements payroll.SnapshotRepository.
func (r *payrollSnapshotRepositoryImpl) ExistsForPeriod(ctx context.Context, period payroll.PayPeriod) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payroll_snapshots WHERE period_start = $1 AND period_end = $2)`,
		period.Start, period.End,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll snapshots: %w", err)
	}
	return exists, nil
}
