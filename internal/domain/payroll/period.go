package payroll

import (
	"fmt"
	"time"
)

// CutoffDay is the first day of a pay period. A period runs from the 21st of
// one month through the 20th of the next.
const CutoffDay = 21

// CurrentPeriod returns the pay period containing now, in now's zone.
func CurrentPeriod(now time.Time) PayPeriod {
	y, m, d := now.Date()
	loc := now.Location()

	startMonth := m
	if d < CutoffDay {
		startMonth = m - 1
	}
	// time.Date normalizes month 0 and 13 into the adjacent year.
	return PayPeriod{
		Start: time.Date(y, startMonth, CutoffDay, 0, 0, 0, 0, loc),
		End:   time.Date(y, startMonth+1, CutoffDay-1, 0, 0, 0, 0, loc),
	}
}

// PreviousPeriod returns the period immediately before p.
func PreviousPeriod(p PayPeriod) PayPeriod {
	return CurrentPeriod(p.Start.AddDate(0, 0, -1))
}

// NewPayPeriod builds a custom inclusive period from two days in loc.
func NewPayPeriod(start, end time.Time, loc *time.Location) (PayPeriod, error) {
	p := PayPeriod{
		Start: dayOf(start.In(loc)),
		End:   dayOf(end.In(loc)),
	}
	if p.End.Before(p.Start) {
		return PayPeriod{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidPeriod,
			p.End.Format("2006-01-02"), p.Start.Format("2006-01-02"))
	}
	return p, nil
}
