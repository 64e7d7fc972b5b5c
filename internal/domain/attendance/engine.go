package attendance

import (
	"time"
)

// Action is the machine-readable outcome of one fingerprint scan.
type Action string

const (
	ActionCheckIn   Action = "check_in"
	ActionCheckOut  Action = "check_out"
	ActionCooldown  Action = "cooldown"
	ActionCompleted Action = "completed"
	ActionInvalid   Action = "invalid_state"
)

// Decision describes the outcome of a single scan and the mutation it
// requires. Only the fields relevant to the action are populated.
type Decision struct {
	Action           Action
	CheckIn          string // new check-in time (ActionCheckIn)
	CheckOut         string // new check-out time (ActionCheckOut)
	WorkingHours     string // derived duration (ActionCheckOut)
	RemainingMinutes int    // minutes left before check-out opens (ActionCooldown)
}

// Decide computes the state transition for one (teacher, date) pair given
// the stored record for today, the current instant, and the cooldown rule.
// It is a total function over the reachable states and performs no I/O;
// the caller applies the mutation the decision describes.
//
//	no record                -> check in now
//	check-in only, < cooldown -> reject, report remaining minutes
//	check-in only, >= cooldown -> check out, derive working duration
//	check-in and check-out    -> reject, day is closed
//	anything else             -> invalid state (data integrity problem)
//
// Elapsed time is measured at second precision and floored to whole
// minutes before the comparison, so an elapsed value exactly equal to the
// cooldown permits check-out. A now-instant earlier than the check-in
// clock time is treated as belonging to the next civil day, which keeps
// the arithmetic correct when the window spans midnight.
func Decide(rec *DayRecord, now time.Time, cooldown time.Duration) Decision {
	nowClock := now.Format(ClockLayout)

	if rec == nil {
		return Decision{Action: ActionCheckIn, CheckIn: nowClock}
	}

	switch {
	case rec.CheckIn != nil && rec.CheckOut == nil:
		elapsedMinutes, ok := elapsedSinceCheckIn(*rec.CheckIn, now)
		if !ok {
			return Decision{Action: ActionInvalid}
		}

		cooldownMinutes := int(cooldown.Minutes())
		if elapsedMinutes < cooldownMinutes {
			return Decision{
				Action:           ActionCooldown,
				RemainingMinutes: cooldownMinutes - elapsedMinutes,
			}
		}

		return Decision{
			Action:       ActionCheckOut,
			CheckOut:     nowClock,
			WorkingHours: FormatWorkDuration(elapsedMinutes),
		}

	case rec.CheckIn != nil && rec.CheckOut != nil:
		return Decision{Action: ActionCompleted}

	default:
		// Check-out without check-in, or an empty stored record.
		// Unreachable under normal operation.
		return Decision{Action: ActionInvalid}
	}
}

// elapsedSinceCheckIn returns the whole minutes between the stored
// check-in clock time and now, both interpreted in now's location. When
// now reads earlier than the check-in it is advanced by one day before
// differencing.
func elapsedSinceCheckIn(checkIn string, now time.Time) (int, bool) {
	t, err := time.Parse(ClockLayout, checkIn)
	if err != nil {
		return 0, false
	}

	checkInAt := time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, now.Location())

	elapsed := now.Sub(checkInAt)
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}

	return int(elapsed.Minutes()), true
}
