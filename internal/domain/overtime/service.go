package overtime

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
)

// OvertimeService drives lembur approvals for console screens.
type OvertimeService interface {
	approval.BoardSweeper

	// List re-fetches the authoritative list and reconciles local state.
	List(ctx context.Context, session access.Session) ([]OvertimeResponse, error)

	// Approve is the division-head approval.
	Approve(ctx context.Context, session access.Session, req approval.TransitionRequest) (TransitionResponse, error)

	// Reject is the division-head rejection.
	Reject(ctx context.Context, session access.Session, req approval.TransitionRequest) (TransitionResponse, error)

	// HRDApprove is the final, payable confirmation.
	HRDApprove(ctx context.Context, session access.Session, req approval.TransitionRequest) (TransitionResponse, error)
}
