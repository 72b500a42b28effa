package hrapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
)

type overtimeRepositoryImpl struct {
	client *backend.Client
	loc    *time.Location
}

func NewOvertimeRepository(client *backend.Client, loc *time.Location) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{client: client, loc: loc}
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) List(ctx context.Context) ([]overtime.OvertimeRequest, error) {
	var wires []overtime.OvertimeWire
	if err := r.client.Get(ctx, "/overtime/", nil, &wires); err != nil {
		return nil, fmt.Errorf("list overtime: %w", err)
	}

	requests := make([]overtime.OvertimeRequest, 0, len(wires))
	for _, w := range wires {
		o, err := w.ToDomain(r.loc)
		if err != nil {
			return nil, err
		}
		requests = append(requests, o)
	}
	return requests, nil
}

// SetSupervisorDecision implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) SetSupervisorDecision(ctx context.Context, id string, status overtime.Status) error {
	path := "/lembur/approve/" + url.PathEscape(id)
	err := r.client.Put(ctx, path, overtime.DecisionBody{Status: int(status)}, nil)
	return mapTransitionError(err, overtime.ErrOvertimeNotFound)
}

// HRDApprove implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) HRDApprove(ctx context.Context, id string) error {
	path := "/lembur/hrd/approve/" + url.PathEscape(id)
	err := r.client.Get(ctx, path, nil, nil)
	return mapTransitionError(err, overtime.ErrOvertimeNotFound)
}

// mapTransitionError translates backend answers of a transition endpoint.
func mapTransitionError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case backend.IsNotFound(err):
		return fmt.Errorf("%w: %w", notFound, err)
	case backend.IsRejected(err):
		return fmt.Errorf("%w: %w", approval.ErrTransitionRejected, err)
	default:
		return err
	}
}
