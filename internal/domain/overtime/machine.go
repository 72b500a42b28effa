package overtime

import "github.com/cmlabs-hris/hris-console-go/internal/domain/approval"

// Machine is the lembur lifecycle:
//
//	Pending -> Approved -> HRDApproved
//	Pending -> Rejected
var Machine = approval.NewMachine("overtime",
	[]Status{StatusPending, StatusApproved, StatusHRDApproved},
	approval.Transition[Status]{Action: approval.ActionApprove, From: StatusPending, To: StatusApproved},
	approval.Transition[Status]{Action: approval.ActionReject, From: StatusPending, To: StatusRejected},
	approval.Transition[Status]{Action: approval.ActionHRDApprove, From: StatusApproved, To: StatusHRDApproved},
)

// NewBoard creates a last-known-state board for overtime requests.
func NewBoard() *approval.Board[Status, OvertimeRequest] {
	return approval.NewBoard(
		func(o OvertimeRequest) string { return o.ID },
		func(o OvertimeRequest) Status { return o.Status },
		OvertimeRequest.WithStatus,
	)
}
