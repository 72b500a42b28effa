package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/overtime"
	"github.com/shopspring/decimal"
)

// PayPeriod is an inclusive range of calendar days. Start and End are
// midnight of their day in the period's zone.
type PayPeriod struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on a day inside the period. t is compared
// by calendar date in the period's zone.
func (p PayPeriod) Contains(t time.Time) bool {
	d := dayOf(t.In(p.Start.Location()))
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days is the number of calendar days in the period.
func (p PayPeriod) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24+0.5) + 1
}

func (p PayPeriod) String() string {
	return p.Start.Format("2006-01-02") + ".." + p.End.Format("2006-01-02")
}

// Employee is one row of the backend payroll roster.
type Employee struct {
	UserID string
	Name   string
}

// Detail is the raw source data of one employee, as returned by the backend.
// It is not guaranteed to be filtered to any period.
type Detail struct {
	Attendances []attendance.AttendanceRecord
	Overtimes   []overtime.OvertimeRequest
}

// PayrollSummary is the derived payable total of one employee over a period.
type PayrollSummary struct {
	UserID             string
	TotalDaysPresent   int
	TotalOvertimeHours decimal.Decimal
}

// DisplayOvertimeHours is the total truncated to whole hours.
func (s PayrollSummary) DisplayOvertimeHours() int64 {
	return s.TotalOvertimeHours.Truncate(0).IntPart()
}

// Snapshot is a stored summary of a closed period.
type Snapshot struct {
	ID                 string
	UserID             string
	EmployeeName       string
	PeriodStart        time.Time
	PeriodEnd          time.Time
	TotalDaysPresent   int
	TotalOvertimeHours decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LatenessEntry is the punctuality of one attendance session.
type LatenessEntry struct {
	AttendanceID string
	Date         time.Time
	ClockIn      time.Time
	Punctuality  attendance.Punctuality
	Status       attendance.Status
}

// LatenessReport lists punctuality per session. Open sessions are listed but
// counted in neither LateCount nor OnTimeCount.
type LatenessReport struct {
	UserID      string
	Period      PayPeriod
	Entries     []LatenessEntry
	LateCount   int
	OnTimeCount int
	OpenCount   int
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
