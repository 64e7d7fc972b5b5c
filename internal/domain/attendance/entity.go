package attendance

import (
	"time"
)

// Layouts for the civil date/time strings stored with each day record.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// DayRecord is one teacher's attendance for one civil date. It is created
// on the first scan of the day (check-in only) and mutated at most once
// more to add the check-out and working duration.
type DayRecord struct {
	TeacherID    string
	Date         string  // YYYY-MM-DD in the configured zone
	CheckIn      *string // HH:MM:SS
	CheckOut     *string // HH:MM:SS, only meaningful once CheckIn is set
	WorkingHours *string // derived, e.g. "8 hours 30 minutes"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Record is a flattened (teacher, date) row for listings and exports.
// Teachers with no attendance yet appear once with nil date fields.
type Record struct {
	TeacherID    string  `json:"teacher_id"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	Date         *string `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	WorkingHours *string `json:"working_hours"`
}
