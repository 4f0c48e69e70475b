package entity

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
	LeaveStatusCanceled LeaveStatus = "canceled"
)

// LeaveRequest is a person's request to be off duty between two inclusive dates.
type LeaveRequest struct {
	ID         int64
	PersonID   string
	PersonName string
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveStatus
	Note       string
	DecidedBy  string
	DecidedAt  *time.Time
	CreatedAt  time.Time
}

// Deletable reports whether the request may be removed through the regular delete path.
func (l *LeaveRequest) Deletable() bool {
	return l.Status == LeaveStatusPending || l.Status == LeaveStatusCanceled
}

// LeaveInterval is the approved-only projection used for conflict detection.
type LeaveInterval struct {
	PersonID   string
	PersonName string
	Start      time.Time
	End        time.Time
}
