package overtime

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func TestOvertimeRequest_Hours(t *testing.T) {
	cases := []struct {
		start, end time.Duration
		want       string
	}{
		{17 * time.Hour, 19*time.Hour + 30*time.Minute, "2.5"},
		{18 * time.Hour, 18 * time.Hour, "0"},
		{22 * time.Hour, 1 * time.Hour, "3"},
		{8*time.Hour + 15*time.Minute, 9 * time.Hour, "0.75"},
	}
	for _, c := range cases {
		o := OvertimeRequest{StartTime: c.start, EndTime: c.end}
		assert.True(t, decimal.RequireFromString(c.want).Equal(o.Hours()), "%v-%v = %s", c.start, c.end, o.Hours())
	}
}

func TestMachine_OvertimeLifecycle(t *testing.T) {
	out, err := Machine.Plan(StatusPending, approval.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, out.To)

	out, err = Machine.Plan(out.To, approval.ActionHRDApprove)
	require.NoError(t, err)
	assert.Equal(t, StatusHRDApproved, out.To)

	_, err = Machine.Plan(StatusPending, approval.ActionHRDApprove)
	assert.ErrorIs(t, err, approval.ErrIllegalTransition)

	out, err = Machine.Plan(StatusApproved, approval.ActionApprove)
	require.NoError(t, err)
	assert.True(t, out.NoOp)
	assert.Equal(t, StatusApproved, out.To)

	assert.True(t, Machine.IsTerminal(StatusRejected))
	assert.True(t, Machine.IsTerminal(StatusHRDApproved))
}

func decodeWire(t *testing.T, raw string) OvertimeWire {
	t.Helper()
	var w OvertimeWire
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	return w
}

func TestOvertimeWire_ToDomain(t *testing.T) {
	w := decodeWire(t, `{"id":12,"user_id":"7","date":"2025-03-10","location_id":3,
		"description":" stock opname ","start_time":"17:00","end_time":"19:30:00","status":3}`)

	o, err := w.ToDomain(wib)
	require.NoError(t, err)

	assert.Equal(t, "12", o.ID)
	assert.Equal(t, "7", o.UserID)
	assert.Equal(t, "3", o.LocationID)
	assert.Equal(t, "stock opname", o.Description)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, wib), o.Date)
	assert.Equal(t, StatusHRDApproved, o.Status)
	assert.True(t, o.IsPayable())
}

func TestOvertimeWire_ToDomainAcceptsTimestampDate(t *testing.T) {
	w := decodeWire(t, `{"id":"1","user_id":"2","date":"2025-03-10T00:00:00.000Z","start_time":"17:00","end_time":"18:00","status":"0"}`)

	o, err := w.ToDomain(wib)
	require.NoError(t, err)
	assert.Equal(t, 10, o.Date.Day())
	assert.Equal(t, StatusPending, o.Status)
}

func TestOvertimeWire_ToDomainRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing id":     `{"user_id":"2","date":"2025-03-10","start_time":"17:00","end_time":"18:00","status":0}`,
		"bad date":       `{"id":"1","user_id":"2","date":"10/03/2025","start_time":"17:00","end_time":"18:00","status":0}`,
		"bad clock":      `{"id":"1","user_id":"2","date":"2025-03-10","start_time":"5pm","end_time":"18:00","status":0}`,
		"missing status": `{"id":"1","user_id":"2","date":"2025-03-10","start_time":"17:00","end_time":"18:00"}`,
		"unknown status": `{"id":"1","user_id":"2","date":"2025-03-10","start_time":"17:00","end_time":"18:00","status":9}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeWire(t, raw).ToDomain(wib)
			require.Error(t, err)
			assert.True(t, errors.Is(err, validator.ErrUnexpectedShape))
		})
	}
}

func TestOvertimeRequest_ToResponse(t *testing.T) {
	o := OvertimeRequest{
		ID:        "1",
		UserID:    "2",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, wib),
		StartTime: 17 * time.Hour,
		EndTime:   19*time.Hour + 30*time.Minute,
		Status:    StatusApproved,
	}

	resp := o.ToResponse()

	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "17:00", resp.StartTime)
	assert.Equal(t, "19:30", resp.EndTime)
	assert.Equal(t, "2.50", resp.Hours)
	assert.Equal(t, 1, resp.Status)
	assert.Equal(t, "Disetujui Kadiv", resp.StatusLabel)
}

func TestNewBoard_UsesRecordAccessors(t *testing.T) {
	b := NewBoard()
	b.Reconcile([]OvertimeRequest{{ID: "1", Status: StatusPending}})

	require.True(t, b.ApplyOptimistic("1", StatusApproved))
	s, ok := b.StatusOf("1")
	require.True(t, ok)
	assert.Equal(t, StatusApproved, s)
}
