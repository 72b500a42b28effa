package approval

import "time"

// RecordKind names the record type a history entry belongs to.
type RecordKind string

const (
	KindOvertime   RecordKind = "overtime"
	KindAttendance RecordKind = "attendance"
)

// HistoryEntry is one backend-confirmed transition.
type HistoryEntry struct {
	ID          string
	RecordKind  RecordKind
	RecordID    string
	Action      Action
	FromStatus  int
	ToStatus    int
	ActorUserID string
	ActorRoleID string
	CompanyID   string
	Note        *string
	CreatedAt   time.Time
}
