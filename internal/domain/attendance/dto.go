package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// AttendanceWire is the backend JSON shape of an absensi record.
type AttendanceWire struct {
	ID          validator.LooseString `json:"id"`
	UserID      validator.LooseString `json:"user_id"`
	ClockIn     string                `json:"clock_in"`
	ClockOut    *string               `json:"clock_out"`
	LocationIn  validator.LooseString `json:"location_in"`
	LocationOut validator.LooseString `json:"location_out"`
	Description string                `json:"description"`
	Status      *validator.LooseInt   `json:"status"`
}

// ToDomain validates the payload and converts it. Wall-clock timestamps are
// interpreted in loc; all timestamps end up expressed in loc.
func (w AttendanceWire) ToDomain(loc *time.Location) (AttendanceRecord, error) {
	var errs validator.ValidationErrors
	out := AttendanceRecord{
		ID:          w.ID.String(),
		UserID:      w.UserID.String(),
		LocationIn:  w.LocationIn.String(),
		LocationOut: w.LocationOut.String(),
		Description: strings.TrimSpace(w.Description),
	}

	if validator.IsEmpty(out.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(out.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}

	if in, ok := validator.ParseTimestamp(w.ClockIn, loc); ok {
		out.ClockIn = in
	} else {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be a timestamp"})
	}

	if w.ClockOut != nil && !validator.IsEmpty(*w.ClockOut) {
		if clockOut, ok := validator.ParseTimestamp(*w.ClockOut, loc); ok {
			out.ClockOut = &clockOut
		} else {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must be a timestamp or null"})
		}
	}

	if out.ClockOut != nil && !out.ClockIn.IsZero() && out.ClockOut.Before(out.ClockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must not be before clock_in"})
	}

	switch {
	case w.Status == nil:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	case !Status(*w.Status).Valid():
		errs = append(errs, validator.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %d", *w.Status)})
	default:
		out.Status = Status(*w.Status)
	}

	if err := validator.NewShapeError("attendance "+out.ID, errs); err != nil {
		return AttendanceRecord{}, err
	}
	return out, nil
}

// StatusBody is the PUT body of the status-update endpoint.
type StatusBody struct {
	Status int `json:"status"`
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Date         string   `json:"date"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     *string  `json:"clock_out,omitempty"`
	LocationIn   string   `json:"location_in"`
	LocationOut  string   `json:"location_out,omitempty"`
	Description  string   `json:"description"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
	Punctuality  string   `json:"punctuality"`
	Status       int      `json:"status"`
	StatusLabel  string   `json:"status_label"`
}

type TransitionResponse struct {
	Record AttendanceResponse `json:"record"`
	// Changed is false when the record was already approved.
	Changed bool `json:"changed"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func (a AttendanceRecord) ToResponse() AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Date:        a.Date().Format("2006-01-02"),
		ClockIn:     a.ClockIn.Format("2006-01-02 15:04:05"),
		ClockOut:    timePtrToString(a.ClockOut),
		LocationIn:  a.LocationIn,
		LocationOut: a.LocationOut,
		Description: a.Description,
		Punctuality: string(Classify(a)),
		Status:      int(a.Status),
		StatusLabel: a.Status.Label(),
	}
	if d, ok := a.Duration(); ok {
		hours := float64(d.Round(time.Minute)/time.Minute) / 60
		resp.WorkingHours = &hours
	}
	return resp
}
