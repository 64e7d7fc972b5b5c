package sysmode

import (
	"time"
)

// Mode is the process-wide operating mode. In register mode the sensor
// enrolls new prints; in attendance mode it records check-ins/check-outs.
type Mode string

const (
	ModeRegister   Mode = "register"
	ModeAttendance Mode = "attendance"
)

// DefaultMode applies when the settings row has never been written.
const DefaultMode = ModeAttendance

func (m Mode) Valid() bool {
	return m == ModeRegister || m == ModeAttendance
}

// Setting is the stored mode value with its last-updated timestamp.
type Setting struct {
	Mode      Mode
	UpdatedAt time.Time
}
