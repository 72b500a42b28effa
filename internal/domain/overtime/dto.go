package overtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// OvertimeWire is the backend JSON shape of a lembur record.
type OvertimeWire struct {
	ID          validator.LooseString `json:"id"`
	UserID      validator.LooseString `json:"user_id"`
	Date        string                `json:"date"`
	LocationID  validator.LooseString `json:"location_id"`
	Description string                `json:"description"`
	StartTime   string                `json:"start_time"`
	EndTime     string                `json:"end_time"`
	Status      *validator.LooseInt   `json:"status"`
}

// ToDomain validates the payload and converts it. Dates are interpreted in loc.
func (w OvertimeWire) ToDomain(loc *time.Location) (OvertimeRequest, error) {
	var errs validator.ValidationErrors
	out := OvertimeRequest{
		ID:          w.ID.String(),
		UserID:      w.UserID.String(),
		LocationID:  w.LocationID.String(),
		Description: strings.TrimSpace(w.Description),
	}

	if validator.IsEmpty(out.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(out.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}

	// Some backend rows carry a full timestamp in the date column.
	dateStr := strings.TrimSpace(w.Date)
	if len(dateStr) > 10 {
		dateStr = dateStr[:10]
	}
	if d, ok := validator.IsValidDate(dateStr); ok {
		out.Date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	} else {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if start, ok := validator.ParseClock(w.StartTime); ok {
		out.StartTime = start
	} else {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM"})
	}
	if end, ok := validator.ParseClock(w.EndTime); ok {
		out.EndTime = end
	} else {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM"})
	}

	switch {
	case w.Status == nil:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	case !Status(*w.Status).Valid():
		errs = append(errs, validator.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %d", *w.Status)})
	default:
		out.Status = Status(*w.Status)
	}

	if err := validator.NewShapeError("overtime "+out.ID, errs); err != nil {
		return OvertimeRequest{}, err
	}
	return out, nil
}

// DecisionBody is the PUT body of a supervisor decision.
type DecisionBody struct {
	Status int `json:"status"`
}

type OvertimeResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	LocationID  string `json:"location_id"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Hours       string `json:"hours"`
	Status      int    `json:"status"`
	StatusLabel string `json:"status_label"`
}

type TransitionResponse struct {
	Record OvertimeResponse `json:"record"`
	// Changed is false when the request was already at or past the target.
	Changed bool `json:"changed"`
}

func formatClock(d time.Duration) string {
	d = d % (24 * time.Hour)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func (o OvertimeRequest) ToResponse() OvertimeResponse {
	return OvertimeResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Date:        o.Date.Format("2006-01-02"),
		LocationID:  o.LocationID,
		Description: o.Description,
		StartTime:   formatClock(o.StartTime),
		EndTime:     formatClock(o.EndTime),
		Hours:       o.Hours().StringFixed(2),
		Status:      int(o.Status),
		StatusLabel: o.Status.Label(),
	}
}
