package hrapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
)

type attendanceRepositoryImpl struct {
	client *backend.Client
	loc    *time.Location
}

func NewAttendanceRepository(client *backend.Client, loc *time.Location) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{client: client, loc: loc}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.AttendanceRecord, error) {
	var wires []attendance.AttendanceWire
	if err := r.client.Get(ctx, "/absen/", nil, &wires); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	records := make([]attendance.AttendanceRecord, 0, len(wires))
	for _, w := range wires {
		a, err := w.ToDomain(r.loc)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, nil
}

// Approve implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Approve(ctx context.Context, id string) error {
	path := "/absen/" + url.PathEscape(id)
	err := r.client.Put(ctx, path, attendance.StatusBody{Status: int(attendance.StatusApproved)}, nil)
	return mapTransitionError(err, attendance.ErrAttendanceNotFound)
}
