package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrapped not found", err: fmt.Errorf("leave request 3: %w", ErrNotFound), want: "not_found"},
		{name: "invalid status", err: ErrInvalidStatus, want: "invalid_status"},
		{name: "past date", err: ErrPastDate, want: "past_date"},
		{name: "duplicate", err: ErrDuplicateRequest, want: "duplicate"},
		{name: "duplicate name", err: ErrDuplicateName, want: "duplicate"},
		{name: "department", err: fmt.Errorf("%w: sales", ErrInvalidDepartment), want: "invalid_department"},
		{name: "unknown person", err: ErrUnknownPerson, want: "unknown_person"},
		{name: "invalid input", err: ErrInvalidInput, want: "invalid_input"},
		{name: "anything else", err: errors.New("disk full"), want: "unexpected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}
