package attendance

import "time"

// Status is the absensi approval status code used by the HR backend.
type Status int

const (
	StatusPending  Status = 0
	StatusApproved Status = 1
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Menunggu"
	case StatusApproved:
		return "Disetujui"
	default:
		return "Tidak Diketahui"
	}
}

// LateHour is the first clock-in hour (24h, local time) that counts as late.
const LateHour = 8

// AttendanceRecord is one clock-in/clock-out session.
type AttendanceRecord struct {
	ID          string
	UserID      string
	ClockIn     time.Time
	ClockOut    *time.Time // nil while the employee is still clocked in
	LocationIn  string
	LocationOut string
	Description string
	Status      Status
}

// Date is the calendar day of the clock-in, in the clock-in's zone.
func (a AttendanceRecord) Date() time.Time {
	y, m, d := a.ClockIn.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, a.ClockIn.Location())
}

// IsOpen reports whether the session has no clock-out yet.
func (a AttendanceRecord) IsOpen() bool {
	return a.ClockOut == nil
}

// Duration is the worked time of a closed session.
func (a AttendanceRecord) Duration() (time.Duration, bool) {
	if a.ClockOut == nil {
		return 0, false
	}
	return a.ClockOut.Sub(a.ClockIn), true
}

// IsPresent reports whether the record counts as a day present.
func (a AttendanceRecord) IsPresent() bool {
	return a.Status == StatusApproved
}

// WithStatus returns a copy with a new status.
func (a AttendanceRecord) WithStatus(s Status) AttendanceRecord {
	a.Status = s
	return a
}

// Punctuality classifies a clock-in for reports.
type Punctuality string

const (
	PunctualityOnTime Punctuality = "on_time"
	PunctualityLate   Punctuality = "late"
	// PunctualityOpen marks sessions without a clock-out; they are not classified.
	PunctualityOpen Punctuality = "open"
)

// Classify applies the lateness rule: clocking in at LateHour or later is late.
func Classify(a AttendanceRecord) Punctuality {
	if a.IsOpen() {
		return PunctualityOpen
	}
	if a.ClockIn.Hour() >= LateHour {
		return PunctualityLate
	}
	return PunctualityOnTime
}
