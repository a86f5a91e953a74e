package attendance

import "errors"

var (
	ErrDayRecordNotFound   = errors.New("attendance record not found")
	ErrLeaveRecordNotFound = errors.New("leave record not found")
	ErrInvalidStatus       = errors.New("invalid attendance status")
	ErrInvalidRecordType   = errors.New("record type must be absence or leave")
)
