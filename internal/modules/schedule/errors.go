package schedule

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("appointment time conflict")
	ErrNotFound   = errors.New("appointment not found")
)
