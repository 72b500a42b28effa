package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
)

// AttendanceService drives absensi approvals for console screens.
type AttendanceService interface {
	approval.BoardSweeper

	// List re-fetches the authoritative list and reconciles local state.
	List(ctx context.Context, session access.Session) ([]AttendanceResponse, error)

	// Approve approves a pending record. Approving an approved record is a no-op.
	Approve(ctx context.Context, session access.Session, req approval.TransitionRequest) (TransitionResponse, error)
}
