package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
)

const closePayrollTimeout = 10 * time.Minute

type PayrollJobs struct {
	payrollService payroll.PayrollService
	serviceToken   string
	now            func() time.Time
}

// NewPayrollJobs builds the payroll jobs. serviceToken is the credential
// forwarded to the HR backend, since cron runs have no caller.
func NewPayrollJobs(payrollService payroll.PayrollService, serviceToken string) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		serviceToken:   serviceToken,
		now:            time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("close_payroll_period", interval, closePayrollTimeout, j.ClosePayrollPeriod)
}

// ClosePayrollPeriod snapshots the previous pay period once it has closed.
func (j *PayrollJobs) ClosePayrollPeriod(ctx context.Context) error {
	ctx = backend.WithToken(ctx, j.serviceToken)

	written, err := j.payrollService.ClosePreviousPeriod(ctx, j.now())
	if err != nil {
		return fmt.Errorf("close payroll period: %w", err)
	}

	if written {
		slog.Info("Cron: Payroll period closed")
	}
	return nil
}
