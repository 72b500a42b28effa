package attendance

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, wib)
}

func ptr(t time.Time) *time.Time { return &t }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		rec  AttendanceRecord
		want Punctuality
	}{
		{"before eight", AttendanceRecord{ClockIn: at(10, 7, 59), ClockOut: ptr(at(10, 17, 0))}, PunctualityOnTime},
		{"exactly eight", AttendanceRecord{ClockIn: at(10, 8, 0), ClockOut: ptr(at(10, 17, 0))}, PunctualityLate},
		{"afternoon", AttendanceRecord{ClockIn: at(10, 13, 5), ClockOut: ptr(at(10, 20, 0))}, PunctualityLate},
		{"still clocked in", AttendanceRecord{ClockIn: at(10, 9, 0)}, PunctualityOpen},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.rec))
		})
	}
}

func TestAttendanceRecord_Duration(t *testing.T) {
	closed := AttendanceRecord{ClockIn: at(10, 8, 0), ClockOut: ptr(at(10, 16, 30))}
	d, ok := closed.Duration()
	require.True(t, ok)
	assert.Equal(t, 8*time.Hour+30*time.Minute, d)

	open := AttendanceRecord{ClockIn: at(10, 8, 0), Status: StatusApproved}
	_, ok = open.Duration()
	assert.False(t, ok)
	assert.True(t, open.IsPresent())
}

func TestMachine_AttendanceLifecycle(t *testing.T) {
	out, err := Machine.Plan(StatusPending, approval.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, out.To)
	assert.False(t, out.NoOp)

	out, err = Machine.Plan(StatusApproved, approval.ActionApprove)
	require.NoError(t, err)
	assert.True(t, out.NoOp)

	_, err = Machine.Plan(StatusPending, approval.ActionReject)
	assert.ErrorIs(t, err, approval.ErrUnknownAction)
}

func TestAttendanceWire_ToDomain(t *testing.T) {
	var w AttendanceWire
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"user_id":9,"clock_in":"2025-03-10 07:45:00",
		"clock_out":"2025-03-10T10:00:00Z","location_in":"Kantor Pusat","status":1}`), &w))

	rec, err := w.ToDomain(wib)
	require.NoError(t, err)

	assert.Equal(t, "5", rec.ID)
	assert.Equal(t, "9", rec.UserID)
	assert.Equal(t, 7, rec.ClockIn.Hour())
	require.NotNil(t, rec.ClockOut)
	assert.Equal(t, 17, rec.ClockOut.Hour())
	assert.Equal(t, StatusApproved, rec.Status)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, wib), rec.Date())
}

func TestAttendanceWire_ToDomainNullClockOut(t *testing.T) {
	var w AttendanceWire
	require.NoError(t, json.Unmarshal([]byte(`{"id":"5","user_id":"9","clock_in":"2025-03-10 09:00:00","clock_out":null,"status":0}`), &w))

	rec, err := w.ToDomain(wib)
	require.NoError(t, err)
	assert.True(t, rec.IsOpen())
}

func TestAttendanceWire_ToDomainRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing clock in":  `{"id":"1","user_id":"2","status":0}`,
		"clock out earlier": `{"id":"1","user_id":"2","clock_in":"2025-03-10 09:00:00","clock_out":"2025-03-10 08:00:00","status":1}`,
		"bad status":        `{"id":"1","user_id":"2","clock_in":"2025-03-10 09:00:00","status":2}`,
		"missing user":      `{"id":"1","clock_in":"2025-03-10 09:00:00","status":0}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var w AttendanceWire
			require.NoError(t, json.Unmarshal([]byte(raw), &w))
			_, err := w.ToDomain(wib)
			assert.True(t, errors.Is(err, validator.ErrUnexpectedShape))
		})
	}
}

func TestAttendanceRecord_ToResponse(t *testing.T) {
	rec := AttendanceRecord{ID: "1", UserID: "2", ClockIn: at(10, 8, 0), ClockOut: ptr(at(10, 16, 30)), Status: StatusApproved}

	resp := rec.ToResponse()

	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "late", resp.Punctuality)
	require.NotNil(t, resp.WorkingHours)
	assert.InDelta(t, 8.5, *resp.WorkingHours, 0.0001)
	assert.Equal(t, "Disetujui", resp.StatusLabel)
}
