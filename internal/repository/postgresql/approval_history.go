package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/database"
	"github.com/google/uuid"
)

type approvalHistoryRepositoryImpl struct {
	db *database.DB
}

func NewApprovalHistoryRepository(db *database.DB) approval.HistoryRepository {
	return &approvalHistoryRepositoryImpl{db: db}
}

// Append implements approval.HistoryRepository.
func (r *approvalHistoryRepositoryImpl) Append(ctx context.Context, entry approval.HistoryEntry) (approval.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return approval.HistoryEntry{}, fmt.Errorf("failed to generate history id: %w", err)
		}
		entry.ID = id.String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO approval_history (id, record_kind, record_id, action, from_status, to_status,
			actor_user_id, actor_role_id, company_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		string(entry.RecordKind),
		entry.RecordID,
		string(entry.Action),
		entry.FromStatus,
		entry.ToStatus,
		entry.ActorUserID,
		entry.ActorRoleID,
		entry.CompanyID,
		entry.Note,
		entry.CreatedAt,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return approval.HistoryEntry{}, fmt.Errorf("failed to append approval history: %w", err)
	}

	return entry, nil
}

// List implements approval.HistoryRepository.
func (r *approvalHistoryRepositoryImpl) List(ctx context.Context, filter approval.HistoryFilter, companyID string) ([]approval.HistoryEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}
	argIdx := 2

	if filter.RecordKind != nil {
		conditions = append(conditions, fmt.Sprintf("record_kind = $%d", argIdx))
		args = append(args, *filter.RecordKind)
		argIdx++
	}
	if filter.RecordID != nil {
		conditions = append(conditions, fmt.Sprintf("record_id = $%d", argIdx))
		args = append(args, *filter.RecordID)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM approval_history WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count approval history: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT id, record_kind, record_id, action, from_status, to_status,
			actor_user_id, actor_role_id, company_id, note, created_at
		FROM approval_history
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list approval history: %w", err)
	}
	defer rows.Close()

	entries := make([]approval.HistoryEntry, 0)
	for rows.Next() {
		var e approval.HistoryEntry
		var kind, action string
		if err := rows.Scan(
			&e.ID,
			&kind,
			&e.RecordID,
			&action,
			&e.FromStatus,
			&e.ToStatus,
			&e.ActorUserID,
			&e.ActorRoleID,
			&e.CompanyID,
			&e.Note,
			&e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan approval history: %w", err)
		}
		e.RecordKind = approval.RecordKind(kind)
		e.Action = approval.Action(action)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
