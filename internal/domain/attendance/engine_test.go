package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func at(hour, min, sec int) time.Time {
	return time.Date(2026, time.March, 9, hour, min, sec, 0, time.UTC)
}

func TestDecide_FirstScanChecksIn(t *testing.T) {
	d := Decide(nil, at(9, 0, 0), 15*time.Minute)

	assert.Equal(t, ActionCheckIn, d.Action)
	assert.Equal(t, "09:00:00", d.CheckIn)
	assert.Empty(t, d.CheckOut)
	assert.Empty(t, d.WorkingHours)
}

func TestDecide_CooldownAndCheckOut(t *testing.T) {
	cases := []struct {
		name          string
		checkIn       string
		now           time.Time
		wantAction    Action
		wantRemaining int
		wantHours     string
	}{
		{
			name:          "ten minutes in, five remaining",
			checkIn:       "09:00:00",
			now:           at(9, 10, 0),
			wantAction:    ActionCooldown,
			wantRemaining: 5,
		},
		{
			name:          "one second after check-in",
			checkIn:       "09:00:00",
			now:           at(9, 0, 1),
			wantAction:    ActionCooldown,
			wantRemaining: 15,
		},
		{
			name:          "one second short of the window",
			checkIn:       "09:00:00",
			now:           at(9, 14, 59),
			wantAction:    ActionCooldown,
			wantRemaining: 1,
		},
		{
			name:       "exactly at the window boundary",
			checkIn:    "09:00:00",
			now:        at(9, 15, 0),
			wantAction: ActionCheckOut,
			wantHours:  "0 hours 15 minutes",
		},
		{
			name:       "full working day",
			checkIn:    "09:00:00",
			now:        at(17, 30, 0),
			wantAction: ActionCheckOut,
			wantHours:  "8 hours 30 minutes",
		},
		{
			name:       "seconds are floored before comparing",
			checkIn:    "09:00:30",
			now:        at(17, 30, 29),
			wantAction: ActionCheckOut,
			wantHours:  "8 hours 29 minutes",
		},
		{
			name:       "window spans midnight",
			checkIn:    "23:50:00",
			now:        at(0, 10, 0),
			wantAction: ActionCheckOut,
			wantHours:  "0 hours 20 minutes",
		},
		{
			name:          "midnight crossing still inside cooldown",
			checkIn:       "23:55:00",
			now:           at(0, 5, 0),
			wantAction:    ActionCooldown,
			wantRemaining: 5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &DayRecord{
				TeacherID: "t-1",
				Date:      "2026-03-09",
				CheckIn:   strPtr(tc.checkIn),
			}

			d := Decide(rec, tc.now, 15*time.Minute)

			assert.Equal(t, tc.wantAction, d.Action)
			if tc.wantAction == ActionCooldown {
				assert.Equal(t, tc.wantRemaining, d.RemainingMinutes)
			}
			if tc.wantAction == ActionCheckOut {
				assert.Equal(t, tc.now.Format(ClockLayout), d.CheckOut)
				assert.Equal(t, tc.wantHours, d.WorkingHours)
			}
		})
	}
}

func TestDecide_CompletedDayRejectsFurtherScans(t *testing.T) {
	rec := &DayRecord{
		TeacherID:    "t-1",
		Date:         "2026-03-09",
		CheckIn:      strPtr("09:00:00"),
		CheckOut:     strPtr("17:30:00"),
		WorkingHours: strPtr("8 hours 30 minutes"),
	}

	d := Decide(rec, at(18, 0, 0), 15*time.Minute)

	assert.Equal(t, ActionCompleted, d.Action)
}

func TestDecide_InvalidStates(t *testing.T) {
	cases := []struct {
		name string
		rec  *DayRecord
	}{
		{
			name: "check-out without check-in",
			rec:  &DayRecord{TeacherID: "t-1", CheckOut: strPtr("17:00:00")},
		},
		{
			name: "record with neither time set",
			rec:  &DayRecord{TeacherID: "t-1"},
		},
		{
			name: "malformed stored check-in",
			rec:  &DayRecord{TeacherID: "t-1", CheckIn: strPtr("not-a-time")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.rec, at(12, 0, 0), 15*time.Minute)
			assert.Equal(t, ActionInvalid, d.Action)
		})
	}
}

func TestDecide_CustomCooldown(t *testing.T) {
	rec := &DayRecord{TeacherID: "t-1", CheckIn: strPtr("09:00:00")}

	d := Decide(rec, at(9, 20, 0), 30*time.Minute)
	assert.Equal(t, ActionCooldown, d.Action)
	assert.Equal(t, 10, d.RemainingMinutes)

	d = Decide(rec, at(9, 30, 0), 30*time.Minute)
	assert.Equal(t, ActionCheckOut, d.Action)
	assert.Equal(t, "0 hours 30 minutes", d.WorkingHours)
}
