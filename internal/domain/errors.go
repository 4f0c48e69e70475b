package domain

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStatus is returned when a leave request transition is not allowed from its current status.
	ErrInvalidStatus = errors.New("invalid leave request status")
	// ErrPastDate is returned when a leave request starts before today.
	ErrPastDate = errors.New("date is in the past")
	// ErrDuplicateRequest is returned when a live leave request already exists for the same start date.
	ErrDuplicateRequest = errors.New("a leave request already exists for this date")
	// ErrDuplicateName is returned when another person already uses the full name.
	ErrDuplicateName = errors.New("a person with this name already exists")
	// ErrInvalidDepartment is returned for departments other than config and monitoring.
	ErrInvalidDepartment = errors.New("invalid department")
	// ErrUnknownPerson is returned when a roster role names someone missing from the directory.
	ErrUnknownPerson = errors.New("unknown person")
	// ErrInvalidInput is returned for malformed values such as empty names or inverted date ranges.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrorKind maps domain errors to a stable label for logs and transport status mapping.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, ErrPastDate):
		return "past_date"
	case errors.Is(err, ErrDuplicateRequest), errors.Is(err, ErrDuplicateName):
		return "duplicate"
	case errors.Is(err, ErrInvalidDepartment):
		return "invalid_department"
	case errors.Is(err, ErrUnknownPerson):
		return "unknown_person"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	}
	return "unexpected"
}
