package overtime

import "context"

// OvertimeRepository is the HR backend's lembur resource.
type OvertimeRepository interface {
	// List returns every overtime request visible to the caller.
	List(ctx context.Context) ([]OvertimeRequest, error)

	// SetSupervisorDecision moves a pending request to approved or rejected.
	SetSupervisorDecision(ctx context.Context, id string, status Status) error

	// HRDApprove finalizes a supervisor-approved request.
	HRDApprove(ctx context.Context, id string) error
}
