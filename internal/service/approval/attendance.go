package approval

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	workflow *workflow[attendance.Status, attendance.AttendanceRecord]
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, historyRepo approval.HistoryRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		workflow: &workflow[attendance.Status, attendance.AttendanceRecord]{
			kind:     approval.KindAttendance,
			machine:  attendance.Machine,
			newBoard: attendance.NewBoard,
			fetch:    attendanceRepo.List,
			notFound: attendance.ErrAttendanceNotFound,
			history:  historyRepo,
		},
	}
}

// EvictIdle implements approval.BoardSweeper.
func (s *AttendanceServiceImpl) EvictIdle(maxIdle time.Duration) int {
	return s.workflow.evictIdle(maxIdle)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, session access.Session) ([]attendance.AttendanceResponse, error) {
	records, err := s.workflow.refresh(ctx, session)
	if err != nil {
		return nil, err
	}
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// Approve implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Approve(ctx context.Context, session access.Session, req approval.TransitionRequest) (attendance.TransitionResponse, error) {
	res, err := s.workflow.apply(ctx, session, req, approval.ActionApprove, func(ctx context.Context, id string, _ attendance.Status) error {
		return s.AttendanceRepository.Approve(ctx, id)
	})
	if err != nil {
		return attendance.TransitionResponse{}, err
	}
	return attendance.TransitionResponse{Record: res.Record.ToResponse(), Changed: res.Changed}, nil
}
