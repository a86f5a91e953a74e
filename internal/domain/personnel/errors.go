package personnel

import "errors"

var (
	ErrPersonnelNotFound    = errors.New("personnel not found")
	ErrPNOExists            = errors.New("PNO already registered")
	ErrInvalidPersonnelType = errors.New("personnel type must be staff or trainee")
)
