package attendance

import "github.com/cmlabs-hris/hris-console-go/internal/domain/approval"

// Machine is the absensi lifecycle: Pending -> Approved. There is no reject path.
var Machine = approval.NewMachine("attendance",
	[]Status{StatusPending, StatusApproved},
	approval.Transition[Status]{Action: approval.ActionApprove, From: StatusPending, To: StatusApproved},
)

// NewBoard creates a last-known-state board for attendance records.
func NewBoard() *approval.Board[Status, AttendanceRecord] {
	return approval.NewBoard(
		func(a AttendanceRecord) string { return a.ID },
		func(a AttendanceRecord) Status { return a.Status },
		AttendanceRecord.WithStatus,
	)
}
