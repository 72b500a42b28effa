package hrapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
)

type payrollSourceRepositoryImpl struct {
	client *backend.Client
	loc    *time.Location
}

func NewPayrollSourceRepository(client *backend.Client, loc *time.Location) payroll.SourceRepository {
	return &payrollSourceRepositoryImpl{client: client, loc: loc}
}

// ListEmployees implements payroll.SourceRepository.
func (r *payrollSourceRepositoryImpl) ListEmployees(ctx context.Context) ([]payroll.Employee, error) {
	var wires []payroll.EmployeeWire
	if err := r.client.Get(ctx, "/payroll/", nil, &wires); err != nil {
		return nil, fmt.Errorf("list payroll employees: %w", err)
	}

	employees := make([]payroll.Employee, 0, len(wires))
	for _, w := range wires {
		e, err := w.ToDomain()
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// GetDetail implements payroll.SourceRepository.
func (r *payrollSourceRepositoryImpl) GetDetail(ctx context.Context, userID string, period payroll.PayPeriod) (payroll.Detail, error) {
	query := url.Values{}
	query.Set("start", period.Start.Format("2006-01-02"))
	query.Set("end", period.End.Format("2006-01-02"))

	var wire payroll.DetailWire
	err := r.client.Get(ctx, "/payroll/detail/"+url.PathEscape(userID), query, &wire)
	if err != nil {
		if backend.IsNotFound(err) {
			return payroll.Detail{}, fmt.Errorf("%w: %w", payroll.ErrEmployeeNotFound, err)
		}
		return payroll.Detail{}, fmt.Errorf("get payroll detail of %s: %w", userID, err)
	}
	return wire.ToDomain(r.loc)
}
