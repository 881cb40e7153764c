package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrNoChange           = errors.New("no change")
	ErrNoActiveSession    = errors.New("no active session")
	ErrItemCompleted      = errors.New("checklist item already completed")
	ErrDayLocked          = errors.New("study day is locked")
	ErrInvalidImport      = errors.New("invalid study plan import")
	ErrPermissionDenied   = errors.New("backup folder permission denied")
	ErrBackupNotConnected = errors.New("backup folder not connected")
)
