package approval

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/overtime"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
	workflow *workflow[overtime.Status, overtime.OvertimeRequest]
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository, historyRepo approval.HistoryRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRepository: overtimeRepo,
		workflow: &workflow[overtime.Status, overtime.OvertimeRequest]{
			kind:     approval.KindOvertime,
			machine:  overtime.Machine,
			newBoard: overtime.NewBoard,
			fetch:    overtimeRepo.List,
			notFound: overtime.ErrOvertimeNotFound,
			history:  historyRepo,
		},
	}
}

// EvictIdle implements approval.BoardSweeper.
func (s *OvertimeServiceImpl) EvictIdle(maxIdle time.Duration) int {
	return s.workflow.evictIdle(maxIdle)
}

// List implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) List(ctx context.Context, session access.Session) ([]overtime.OvertimeResponse, error) {
	records, err := s.workflow.refresh(ctx, session)
	if err != nil {
		return nil, err
	}
	responses := make([]overtime.OvertimeResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// Approve implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, session access.Session, req approval.TransitionRequest) (overtime.TransitionResponse, error) {
	return s.transition(ctx, session, req, approval.ActionApprove, s.decide)
}

// Reject implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, session access.Session, req approval.TransitionRequest) (overtime.TransitionResponse, error) {
	return s.transition(ctx, session, req, approval.ActionReject, s.decide)
}

// HRDApprove implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) HRDApprove(ctx context.Context, session access.Session, req approval.TransitionRequest) (overtime.TransitionResponse, error) {
	return s.transition(ctx, session, req, approval.ActionHRDApprove, func(ctx context.Context, id string, _ overtime.Status) error {
		return s.OvertimeRepository.HRDApprove(ctx, id)
	})
}

func (s *OvertimeServiceImpl) decide(ctx context.Context, id string, to overtime.Status) error {
	return s.OvertimeRepository.SetSupervisorDecision(ctx, id, to)
}

func (s *OvertimeServiceImpl) transition(
	ctx context.Context,
	session access.Session,
	req approval.TransitionRequest,
	action approval.Action,
	call func(ctx context.Context, id string, to overtime.Status) error,
) (overtime.TransitionResponse, error) {
	res, err := s.workflow.apply(ctx, session, req, action, call)
	if err != nil {
		return overtime.TransitionResponse{}, err
	}
	return overtime.TransitionResponse{Record: res.Record.ToResponse(), Changed: res.Changed}, nil
}
