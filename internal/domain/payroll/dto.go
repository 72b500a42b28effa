package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// PeriodRequest asks for the period containing Date, or today when empty.
type PeriodRequest struct {
	Date string `json:"date,omitempty"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Resolve returns the requested period, with now standing in for an empty date.
func (r PeriodRequest) Resolve(now time.Time, loc *time.Location) PayPeriod {
	if d, ok := validator.IsValidDate(r.Date); ok {
		return CurrentPeriod(time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc))
	}
	return CurrentPeriod(now.In(loc))
}

// RangeRequest selects a custom period. Both bounds empty means the current
// period.
type RangeRequest struct {
	UserID string `json:"-"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Start == "") != (r.End == "") {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "start and end must be provided together"})
	}

	var start, end time.Time
	var startOK, endOK bool
	if r.Start != "" {
		if start, startOK = validator.IsValidDate(r.Start); !startOK {
			errs = append(errs, validator.ValidationError{Field: "start", Message: "start must be in YYYY-MM-DD format"})
		}
	}
	if r.End != "" {
		if end, endOK = validator.IsValidDate(r.End); !endOK {
			errs = append(errs, validator.ValidationError{Field: "end", Message: "end must be in YYYY-MM-DD format"})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "end must not be before start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Resolve returns the requested period. Call Validate first.
func (r RangeRequest) Resolve(now time.Time, loc *time.Location) (PayPeriod, error) {
	if r.Start == "" && r.End == "" {
		return CurrentPeriod(now.In(loc)), nil
	}
	start, ok := validator.IsValidDate(r.Start)
	if !ok {
		return PayPeriod{}, ErrInvalidPeriod
	}
	end, ok := validator.IsValidDate(r.End)
	if !ok {
		return PayPeriod{}, ErrInvalidPeriod
	}
	return NewPayPeriod(
		time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc),
		time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc),
		loc,
	)
}

type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type SummaryResponse struct {
	UserID                    string `json:"user_id"`
	Name                      string `json:"name,omitempty"`
	TotalDaysPresent          int    `json:"total_days_present"`
	TotalOvertimeHours        string `json:"total_overtime_hours"`
	TotalOvertimeHoursDisplay int64  `json:"total_overtime_hours_display"`
}

type UserSummaryResponse struct {
	Period  PeriodResponse  `json:"period"`
	Summary SummaryResponse `json:"summary"`
}

type AllSummariesResponse struct {
	Period PeriodResponse    `json:"period"`
	Items  []SummaryResponse `json:"items"`
	// FailedUserIDs lists employees whose detail fetch failed; they appear in
	// Items with zero totals.
	FailedUserIDs []string `json:"failed_user_ids"`
}

type LatenessEntryResponse struct {
	AttendanceID string `json:"attendance_id"`
	Date         string `json:"date"`
	ClockIn      string `json:"clock_in"`
	Punctuality  string `json:"punctuality"`
	Status       int    `json:"status"`
}

type LatenessResponse struct {
	UserID      string                  `json:"user_id"`
	Period      PeriodResponse          `json:"period"`
	LateCount   int                     `json:"late_count"`
	OnTimeCount int                     `json:"on_time_count"`
	OpenCount   int                     `json:"open_count"`
	Entries     []LatenessEntryResponse `json:"entries"`
}

type SnapshotResponse struct {
	UserID                    string `json:"user_id"`
	EmployeeName              string `json:"employee_name"`
	TotalDaysPresent          int    `json:"total_days_present"`
	TotalOvertimeHours        string `json:"total_overtime_hours"`
	TotalOvertimeHoursDisplay int64  `json:"total_overtime_hours_display"`
	CreatedAt                 string `json:"created_at"`
	UpdatedAt                 string `json:"updated_at"`
}

type ListSnapshotsResponse struct {
	Period PeriodResponse     `json:"period"`
	Items  []SnapshotResponse `json:"items"`
}

func (p PayPeriod) ToResponse() PeriodResponse {
	return PeriodResponse{
		Start: p.Start.Format("2006-01-02"),
		End:   p.End.Format("2006-01-02"),
		Days:  p.Days(),
	}
}

func (s PayrollSummary) ToResponse() SummaryResponse {
	return SummaryResponse{
		UserID:                    s.UserID,
		TotalDaysPresent:          s.TotalDaysPresent,
		TotalOvertimeHours:        s.TotalOvertimeHours.String(),
		TotalOvertimeHoursDisplay: s.DisplayOvertimeHours(),
	}
}

func (r LatenessReport) ToResponse() LatenessResponse {
	entries := make([]LatenessEntryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, LatenessEntryResponse{
			AttendanceID: e.AttendanceID,
			Date:         e.Date.Format("2006-01-02"),
			ClockIn:      e.ClockIn.Format("15:04:05"),
			Punctuality:  string(e.Punctuality),
			Status:       int(e.Status),
		})
	}
	return LatenessResponse{
		UserID:      r.UserID,
		Period:      r.Period.ToResponse(),
		LateCount:   r.LateCount,
		OnTimeCount: r.OnTimeCount,
		OpenCount:   r.OpenCount,
		Entries:     entries,
	}
}

func (s Snapshot) ToResponse() SnapshotResponse {
	summary := PayrollSummary{TotalOvertimeHours: s.TotalOvertimeHours}
	return SnapshotResponse{
		UserID:                    s.UserID,
		EmployeeName:              s.EmployeeName,
		TotalDaysPresent:          s.TotalDaysPresent,
		TotalOvertimeHours:        s.TotalOvertimeHours.String(),
		TotalOvertimeHoursDisplay: summary.DisplayOvertimeHours(),
		CreatedAt:                 s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 s.UpdatedAt.Format(time.RFC3339),
	}
}
