package payroll

import "errors"

var (
	ErrInvalidPeriod    = errors.New("invalid payroll period")
	ErrEmployeeNotFound = errors.New("employee not found")
)
