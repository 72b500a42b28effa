package payroll

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// EmployeeWire is one row of GET /payroll/.
type EmployeeWire struct {
	UserID validator.LooseString `json:"user_id"`
	Name   string                `json:"name"`
}

func (w EmployeeWire) ToDomain() (Employee, error) {
	e := Employee{UserID: w.UserID.String(), Name: strings.TrimSpace(w.Name)}
	if validator.IsEmpty(e.UserID) {
		return Employee{}, validator.NewShapeError("payroll employee", validator.ValidationErrors{
			{Field: "user_id", Message: "user_id is required"},
		})
	}
	return e, nil
}

// DetailWire is the answer of GET /payroll/detail/{userId}.
type DetailWire struct {
	Attendances []attendance.AttendanceWire `json:"attendances"`
	Overtimes   []overtime.OvertimeWire     `json:"overtimes"`
}

// ToDomain converts every record; the first malformed record fails the detail.
func (w DetailWire) ToDomain(loc *time.Location) (Detail, error) {
	d := Detail{
		Attendances: make([]attendance.AttendanceRecord, 0, len(w.Attendances)),
		Overtimes:   make([]overtime.OvertimeRequest, 0, len(w.Overtimes)),
	}
	for _, aw := range w.Attendances {
		a, err := aw.ToDomain(loc)
		if err != nil {
			return Detail{}, err
		}
		d.Attendances = append(d.Attendances, a)
	}
	for _, ow := range w.Overtimes {
		o, err := ow.ToDomain(loc)
		if err != nil {
			return Detail{}, err
		}
		d.Overtimes = append(d.Overtimes, o)
	}
	return d, nil
}
