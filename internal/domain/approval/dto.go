package approval

import (
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

type TransitionRequest struct {
	ID   string  `json:"-"`
	Note *string `json:"note,omitempty"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{Field: "note", Message: "note must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryFilter struct {
	RecordKind *string `json:"record_kind,omitempty"`
	RecordID   *string `json:"record_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.RecordKind != nil {
		valid := []string{string(KindOvertime), string(KindAttendance)}
		if !validator.IsInSlice(*f.RecordKind, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "kind",
				Message: "kind must be one of: overtime, attendance",
			})
		}
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must not exceed 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryEntryResponse struct {
	ID          string  `json:"id"`
	RecordKind  string  `json:"record_kind"`
	RecordID    string  `json:"record_id"`
	Action      string  `json:"action"`
	FromStatus  int     `json:"from_status"`
	ToStatus    int     `json:"to_status"`
	ActorUserID string  `json:"actor_user_id"`
	ActorRoleID string  `json:"actor_role_id"`
	Note        *string `json:"note,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ListHistoryResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Entries    []HistoryEntryResponse `json:"entries"`
}

func (e HistoryEntry) ToResponse() HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:          e.ID,
		RecordKind:  string(e.RecordKind),
		RecordID:    e.RecordID,
		Action:      string(e.Action),
		FromStatus:  e.FromStatus,
		ToStatus:    e.ToStatus,
		ActorUserID: e.ActorUserID,
		ActorRoleID: e.ActorRoleID,
		Note:        e.Note,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
