package attendance

import "context"

// AttendanceRepository is the HR backend's absensi resource.
type AttendanceRepository interface {
	// List returns every attendance record visible to the caller.
	List(ctx context.Context) ([]AttendanceRecord, error)

	// Approve sets a record's status to approved.
	Approve(ctx context.Context, id string) error
}
