package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lembur approval status code used by the HR backend.
type Status int

const (
	StatusPending     Status = 0
	StatusApproved    Status = 1 // approved by the division head
	StatusRejected    Status = 2
	StatusHRDApproved Status = 3 // confirmed by HRD, payable
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusHRDApproved:
		return true
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Menunggu"
	case StatusApproved:
		return "Disetujui Kadiv"
	case StatusRejected:
		return "Ditolak"
	case StatusHRDApproved:
		return "Disetujui HRD"
	default:
		return "Tidak Diketahui"
	}
}

// OvertimeRequest is one lembur submission.
type OvertimeRequest struct {
	ID          string
	UserID      string
	Date        time.Time // calendar date, midnight in the console zone
	LocationID  string
	Description string
	StartTime   time.Duration // offset from midnight
	EndTime     time.Duration // offset from midnight
	Status      Status
}

// Span is the worked duration. An end time earlier than the start time means
// the overtime ran past midnight.
func (o OvertimeRequest) Span() time.Duration {
	d := o.EndTime - o.StartTime
	if d < 0 {
		d += 24 * time.Hour
	}
	return d
}

// Hours is the span as fractional hours, e.g. 17:00-19:30 is 2.5. It is
// meant for per-record display; totals should add spans and convert once
// with HoursOf.
func (o OvertimeRequest) Hours() decimal.Decimal {
	return HoursOf(o.Span())
}

// HoursOf converts d to fractional hours at whole-second precision.
func HoursOf(d time.Duration) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(d / time.Second))
	return seconds.Div(decimal.NewFromInt(3600))
}

// IsPayable reports whether the request counts toward payroll.
func (o OvertimeRequest) IsPayable() bool {
	return o.Status == StatusHRDApproved
}

// WithStatus returns a copy with a new status.
func (o OvertimeRequest) WithStatus(s Status) OvertimeRequest {
	o.Status = s
	return o
}
