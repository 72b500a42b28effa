package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/overtime"
	"github.com/shopspring/decimal"
)

// Aggregate reduces raw records of one user into a summary for period.
// Records of other users or outside the period are ignored. Only approved
// attendance and HRD-approved overtime count. Inputs are not modified.
func Aggregate(userID string, attendances []attendance.AttendanceRecord, overtimes []overtime.OvertimeRequest, period PayPeriod) PayrollSummary {
	summary := PayrollSummary{
		UserID:             userID,
		TotalOvertimeHours: decimal.Zero,
	}

	for _, a := range attendances {
		if a.UserID != userID || !a.IsPresent() || !period.Contains(a.ClockIn) {
			continue
		}
		// One per session, not per calendar day.
		summary.TotalDaysPresent++
	}

	// Spans are summed as durations and converted once, so the total carries
	// no per-record division remainder.
	var worked time.Duration
	for _, o := range overtimes {
		if o.UserID != userID || !o.IsPayable() || !period.Contains(o.Date) {
			continue
		}
		worked += o.Span()
	}
	summary.TotalOvertimeHours = overtime.HoursOf(worked)

	return summary
}

// Lateness classifies every session of userID within period, regardless of
// approval status.
func Lateness(userID string, attendances []attendance.AttendanceRecord, period PayPeriod) LatenessReport {
	report := LatenessReport{
		UserID:  userID,
		Period:  period,
		Entries: make([]LatenessEntry, 0),
	}

	for _, a := range attendances {
		if a.UserID != userID || !period.Contains(a.ClockIn) {
			continue
		}
		p := attendance.Classify(a)
		switch p {
		case attendance.PunctualityLate:
			report.LateCount++
		case attendance.PunctualityOnTime:
			report.OnTimeCount++
		case attendance.PunctualityOpen:
			report.OpenCount++
		}
		report.Entries = append(report.Entries, LatenessEntry{
			AttendanceID: a.ID,
			Date:         a.Date(),
			ClockIn:      a.ClockIn,
			Punctuality:  p,
			Status:       a.Status,
		})
	}

	return report
}
