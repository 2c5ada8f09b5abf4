package attendance

import "errors"

// Attendance domain errors
var (
	ErrPunchNotFound = errors.New("punch record not found")
	ErrInvalidKind   = errors.New("invalid punch kind")
	ErrInvalidEstado = errors.New("invalid approval state")
)
